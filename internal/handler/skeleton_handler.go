package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// SkeletonHandler serves the static skeleton topology used by the 3D
// viewer: the joint enumeration and the bone connection list.
type SkeletonHandler struct{}

// NewSkeletonHandler creates a new skeleton handler
func NewSkeletonHandler() *SkeletonHandler {
	return &SkeletonHandler{}
}

// GetSkeleton handles GET /api/v1/skeleton
func (h *SkeletonHandler) GetSkeleton(c *gin.Context) {
	metricKinds := make([]gin.H, 0, len(models.MetricKinds))
	for _, k := range models.MetricKinds {
		metricKinds = append(metricKinds, gin.H{
			"kind": k.String(),
			"unit": k.Unit(),
		})
	}

	response.Success(c, gin.H{
		"jointNames":  models.JointNames,
		"bones":       models.Bones,
		"frameRate":   models.FrameRate,
		"metricKinds": metricKinds,
	})
}
