package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/config"
	"github.com/pitchlab/mocap-backend-go/internal/handler"
	"github.com/pitchlab/mocap-backend-go/internal/middleware"
	"github.com/pitchlab/mocap-backend-go/internal/repository"
	"github.com/pitchlab/mocap-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB, motionService *service.MotionService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	rateWindow := time.Duration(cfg.RateWindowSeconds) * time.Second
	r.Use(middleware.NewRateLimiter(cfg.RateLimit, rateWindow).Middleware())

	sessionRepo := repository.NewSessionRepository(db)

	authHandler := handler.NewAuthHandler(cfg)
	ingestHandler := handler.NewIngestHandler(motionService, sessionRepo, cfg.MaxUploadBytes)
	motionHandler := handler.NewMotionHandler(motionService.Store())
	streamHandler := handler.NewStreamHandler(motionService.Store())
	skeletonHandler := handler.NewSkeletonHandler()
	sessionHandler := handler.NewSessionHandler(sessionRepo)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Motion Capture Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", authHandler.IssueToken)

		// 骨骼拓扑接口 (static reference data for the viewer)
		api.GET("/skeleton", skeletonHandler.GetSkeleton)

		// 动作数据接口
		motion := api.Group("/motion")
		{
			// Uploads are heavyweight; give them a tight limiter on top
			// of auth.
			upload := middleware.NewRateLimiter(10, time.Minute)
			motion.POST("/ingest", middleware.Auth(cfg.JWTSecret), upload.Middleware(), ingestHandler.Ingest)

			motion.GET("/current", motionHandler.GetCurrent)
			motion.GET("/frames", motionHandler.GetFrames)
			motion.GET("/metrics/:kind", motionHandler.GetMetricSeries)
			motion.GET("/stream", streamHandler.Stream)
		}

		// 上传历史接口
		sessions := api.Group("/sessions", middleware.Auth(cfg.JWTSecret))
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
		}
	}

	return r
}
