package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

func TestBoneLength(t *testing.T) {
	t.Parallel()

	a := models.JointPosition{X: 0, Y: 0, Z: 0}
	b := models.JointPosition{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, BoneLength(a, b), 1e-12)
	assert.InDelta(t, 5.0, BoneLength(b, a), 1e-12)
}

func TestMeanBoneLength(t *testing.T) {
	t.Parallel()

	t.Run("no frames", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, MeanBoneLength(nil))
	})

	t.Run("partial coverage skips missing endpoints", func(t *testing.T) {
		t.Parallel()
		frame := models.FrameRecord{
			JointCenters: map[models.JointName]models.JointPosition{
				models.Head: {X: 0, Y: 1.8, Z: 0},
				models.Neck: {X: 0, Y: 1.6, Z: 0},
			},
		}
		// Only head-neck is measurable.
		assert.InDelta(t, 0.2, MeanBoneLength([]models.FrameRecord{frame}), 1e-9)
	})
}
