package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/repository"
	"github.com/pitchlab/mocap-backend-go/internal/service"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// IngestHandler accepts capture file uploads and runs the pipeline
type IngestHandler struct {
	motionService *service.MotionService
	sessionRepo   *repository.SessionRepository
	maxUpload     int64
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(motionService *service.MotionService, sessionRepo *repository.SessionRepository, maxUpload int64) *IngestHandler {
	return &IngestHandler{
		motionService: motionService,
		sessionRepo:   sessionRepo,
		maxUpload:     maxUpload,
	}
}

// Ingest handles POST /api/v1/motion/ingest. The request is a multipart
// form with parts "centers" and "rotations" (required) and "metrics"
// (optional). The pipeline itself never fails; only a missing required
// part or an oversized body is rejected.
func (h *IngestHandler) Ingest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	centersText, centersName, err := formFileText(c, "centers")
	if err != nil {
		response.BadRequest(c, "Missing or unreadable 'centers' file")
		return
	}
	rotationsText, rotationsName, err := formFileText(c, "rotations")
	if err != nil {
		response.BadRequest(c, "Missing or unreadable 'rotations' file")
		return
	}
	// Metrics file is optional; absence means the deriver runs.
	metricsText, metricsName, _ := formFileText(c, "metrics")

	dataset, session := h.motionService.Ingest(service.IngestInput{
		CentersText:   centersText,
		RotationsText: rotationsText,
		MetricsText:   metricsText,
		CentersFile:   centersName,
		RotationsFile: rotationsName,
		MetricsFile:   metricsName,
	})

	if err := h.sessionRepo.Create(&session); err != nil {
		// The dataset is already live; a failed audit write should not
		// hide it from the caller.
		response.Success(c, gin.H{
			"session":    session,
			"frameCount": len(dataset.Frames),
			"auditError": err.Error(),
		})
		return
	}

	response.Success(c, gin.H{
		"session":    session,
		"frameCount": len(dataset.Frames),
	})
}

// formFileText reads one multipart file part fully into memory.
func formFileText(c *gin.Context, field string) (string, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", "", err
	}
	text, err := readAll(fileHeader)
	if err != nil {
		return "", "", err
	}
	return text, fileHeader.Filename, nil
}

func readAll(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
