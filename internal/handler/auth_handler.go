package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/config"
	"github.com/pitchlab/mocap-backend-go/internal/middleware"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// AuthHandler issues dashboard tokens
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid credentials payload")
		return
	}

	if req.Username != h.cfg.DashboardUser || req.Password != h.cfg.DashboardPassword {
		response.Unauthorized(c, "Invalid username or password")
		return
	}

	ttl := time.Duration(h.cfg.TokenTTLMinutes) * time.Minute
	token, err := middleware.IssueToken(h.cfg.JWTSecret, req.Username, ttl)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"token":     token,
		"expiresIn": int(ttl.Seconds()),
	})
}
