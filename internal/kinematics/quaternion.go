// Package kinematics derives angular quantities from joint orientation
// quaternions: Euler extraction, twist velocity about the vertical axis,
// and joint-to-joint separation angles.
package kinematics

import (
	"math"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// DegenerateEpsilon is the magnitude below which a quaternion is treated
// as degenerate and replaced with identity.
const DegenerateEpsilon = 1e-9

// EulerAngles is an intrinsic roll/pitch/yaw decomposition in radians.
// Yaw is the twist about the vertical axis.
type EulerAngles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Magnitude returns the quaternion's length.
func Magnitude(q models.JointOrientation) float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize scales q to unit length. A near-zero quaternion maps to
// identity rather than dividing by zero.
func Normalize(q models.JointOrientation) models.JointOrientation {
	mag := Magnitude(q)
	if mag < DegenerateEpsilon {
		return models.IdentityOrientation()
	}
	return models.JointOrientation{X: q.X / mag, Y: q.Y / mag, Z: q.Z / mag, W: q.W / mag}
}

// ToEuler converts a quaternion to intrinsic roll/pitch/yaw. The input is
// normalized first to guard against upstream drift; the pitch argument is
// clamped to [-1, 1], saturating to ±90° with the sign of the argument.
func ToEuler(q models.JointOrientation) EulerAngles {
	q = Normalize(q)

	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	var pitch float64
	if sinp >= 1 {
		pitch = math.Pi / 2
	} else if sinp <= -1 {
		pitch = -math.Pi / 2
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}
}

// FromEuler builds the quaternion for an intrinsic roll/pitch/yaw triple.
func FromEuler(e EulerAngles) models.JointOrientation {
	cr, sr := math.Cos(e.Roll/2), math.Sin(e.Roll/2)
	cp, sp := math.Cos(e.Pitch/2), math.Sin(e.Pitch/2)
	cy, sy := math.Cos(e.Yaw/2), math.Sin(e.Yaw/2)

	return models.JointOrientation{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}
