package handler

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/repository"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// SessionHandler serves the ingestion audit history
type SessionHandler struct {
	sessionRepo *repository.SessionRepository
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionRepo *repository.SessionRepository) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo}
}

type sessionFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ListSessions handles GET /api/v1/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var filter sessionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	if filter.PageSize > 500 {
		filter.PageSize = 500
	}

	sessions, total, err := h.sessionRepo.List(filter.Page, filter.PageSize)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, models.SessionsResponse{
		Data:       sessions,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	})
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionRepo.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if session == nil {
		response.NotFound(c, "Session not found")
		return
	}
	response.Success(c, session)
}
