// Package spatial provides 3D geometry helpers over joint centers: bone
// lengths, displacements and skeleton-scale summaries used for ingestion
// sanity figures.
package spatial

import (
	"github.com/golang/geo/r3"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// Vec converts a joint position to an r3 vector.
func Vec(p models.JointPosition) r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Displacement returns the vector from a to b.
func Displacement(a, b models.JointPosition) r3.Vector {
	return Vec(b).Sub(Vec(a))
}

// BoneLength returns the distance in meters between two joint centers.
func BoneLength(a, b models.JointPosition) float64 {
	return Displacement(a, b).Norm()
}

// MeanBoneLength averages the length of every defined bone over every
// frame where both endpoints are present. It is a cheap skeleton-scale
// figure: a human skeleton lands near 0.3 m, so values orders of
// magnitude off point at a unit-normalization problem in the source file.
// Returns 0 when no bone is measurable.
func MeanBoneLength(frames []models.FrameRecord) float64 {
	var sum float64
	var count int
	for _, frame := range frames {
		for _, bone := range models.Bones {
			a, okA := frame.JointCenters[bone.A]
			b, okB := frame.JointCenters[bone.B]
			if !okA || !okB {
				continue
			}
			sum += BoneLength(a, b)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
