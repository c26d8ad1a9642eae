package handler

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/service"
	"github.com/pitchlab/mocap-backend-go/internal/stats"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// MotionHandler serves the active motion dataset
type MotionHandler struct {
	store *service.DatasetStore
}

// NewMotionHandler creates a new motion handler
func NewMotionHandler(store *service.DatasetStore) *MotionHandler {
	return &MotionHandler{store: store}
}

// GetCurrent handles GET /api/v1/motion/current
func (h *MotionHandler) GetCurrent(c *gin.Context) {
	dataset, session, ok := h.store.Current()
	if !ok {
		response.NotFound(c, "No motion dataset ingested yet")
		return
	}

	response.Success(c, gin.H{
		"session":       session,
		"frameCount":    len(dataset.Frames),
		"frameRate":     dataset.FrameRate,
		"duration":      dataset.Duration,
		"jointNames":    dataset.JointNames,
		"usingFallback": dataset.UsingFallback,
	})
}

// GetFrames handles GET /api/v1/motion/frames with pagination and an
// optional frame-number window.
func (h *MotionHandler) GetFrames(c *gin.Context) {
	dataset, _, ok := h.store.Current()
	if !ok {
		response.NotFound(c, "No motion dataset ingested yet")
		return
	}

	var filter models.FrameFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 300
	}
	if filter.PageSize > 3000 {
		filter.PageSize = 3000
	}

	// Apply the frame-number window first.
	frames := dataset.Frames
	if filter.EndFrame > 0 || filter.StartFrame > 0 {
		windowed := make([]models.FrameRecord, 0, len(frames))
		for _, fr := range frames {
			if fr.FrameNumber < filter.StartFrame {
				continue
			}
			if filter.EndFrame > 0 && fr.FrameNumber > filter.EndFrame {
				continue
			}
			windowed = append(windowed, fr)
		}
		frames = windowed
	}

	total := int64(len(frames))
	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))
	start := (filter.Page - 1) * filter.PageSize
	if start > len(frames) {
		start = len(frames)
	}
	end := start + filter.PageSize
	if end > len(frames) {
		end = len(frames)
	}

	response.Success(c, models.FramesResponse{
		Data:       frames[start:end],
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// MetricSeries is one dashboard signal over the full frame sequence.
type MetricSeries struct {
	Kind          string    `json:"kind"`
	Unit          string    `json:"unit"`
	Timestamps    []float64 `json:"timestamps"`
	Values        []float64 `json:"values"`
	UsingFallback bool      `json:"usingFallback"`
	Summary       struct {
		Mean float64 `json:"mean"`
		P50  float64 `json:"p50"`
		P95  float64 `json:"p95"`
		Max  float64 `json:"max"`
	} `json:"summary"`
}

// GetMetricSeries handles GET /api/v1/motion/metrics/:kind
func (h *MotionHandler) GetMetricSeries(c *gin.Context) {
	dataset, _, ok := h.store.Current()
	if !ok {
		response.NotFound(c, "No motion dataset ingested yet")
		return
	}

	kind, err := models.ParseMetricKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	series := MetricSeries{
		Kind:          kind.String(),
		Unit:          kind.Unit(),
		Timestamps:    make([]float64, 0, len(dataset.Frames)),
		Values:        make([]float64, 0, len(dataset.Frames)),
		UsingFallback: dataset.UsingFallback,
	}
	var sum, max float64
	for i, frame := range dataset.Frames {
		v := kind.ValueOf(frame.Metrics)
		series.Timestamps = append(series.Timestamps, frame.Metrics.Timestamp)
		series.Values = append(series.Values, v)
		sum += v
		if i == 0 || v > max {
			max = v
		}
	}
	if len(series.Values) > 0 {
		series.Summary.Mean = sum / float64(len(series.Values))
		series.Summary.P50 = stats.Percentile(series.Values, 50)
		series.Summary.P95 = stats.Percentile(series.Values, 95)
		series.Summary.Max = max
	}

	response.Success(c, series)
}
