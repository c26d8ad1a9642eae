package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logf emits request log lines. It defaults to log.Printf and may be
// replaced, e.g. to mute request logging in tests.
var Logf = log.Printf

// Logger logs each request with its status, latency and client address.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		url := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			url += "?" + q
		}

		if errs := c.Errors.String(); errs != "" {
			Logf("%s %s from %s status=%d latency=%v errors=%s",
				c.Request.Method, url, c.ClientIP(), c.Writer.Status(), time.Since(start), errs)
			return
		}
		Logf("%s %s from %s status=%d latency=%v",
			c.Request.Method, url, c.ClientIP(), c.Writer.Status(), time.Since(start))
	}
}
