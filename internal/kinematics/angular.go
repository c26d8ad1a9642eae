package kinematics

import (
	"math"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// DeltaTime is the fixed step between frames. The capture rate is a
// hardware property, never read from input.
const DeltaTime = models.FrameInterval

const radToDeg = 180 / math.Pi

// wrapPi folds an angle difference in radians into (-π, π].
func wrapPi(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// TwistVelocity estimates the angular velocity about the vertical axis in
// deg/s via a one-step backward difference of yaw. A yaw step across the
// ±180° boundary is wrap-corrected, so +179° to -179° reads as a small
// positive velocity rather than a ~358°-per-step spike.
func TwistVelocity(current, previous models.JointOrientation, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	cur := ToEuler(current)
	prev := ToEuler(previous)
	diff := wrapPi(cur.Yaw - prev.Yaw)
	return diff / dt * radToDeg
}

// ExternalRotation returns the signed yaw difference between two joints in
// degrees, wrapped into [0, 360).
func ExternalRotation(a, b models.JointOrientation) float64 {
	diff := wrapPi(ToEuler(a).Yaw-ToEuler(b).Yaw) * radToDeg
	if diff < 0 {
		diff += 360
	}
	return diff
}

// TrunkSeparation returns the absolute yaw separation between the pelvis
// and another segment in degrees, wrapped into [0, 180].
func TrunkSeparation(pelvis, other models.JointOrientation) float64 {
	diff := wrapPi(ToEuler(other).Yaw-ToEuler(pelvis).Yaw) * radToDeg
	return math.Abs(diff)
}
