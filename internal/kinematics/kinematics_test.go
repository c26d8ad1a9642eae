package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

func yawQuat(yawDeg float64) models.JointOrientation {
	return FromEuler(EulerAngles{Yaw: yawDeg * math.Pi / 180})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("idempotent on unit quaternion", func(t *testing.T) {
		t.Parallel()
		q := FromEuler(EulerAngles{Roll: 0.3, Pitch: -0.2, Yaw: 1.1})
		n := Normalize(q)
		assert.InDelta(t, q.X, n.X, 1e-12)
		assert.InDelta(t, q.Y, n.Y, 1e-12)
		assert.InDelta(t, q.Z, n.Z, 1e-12)
		assert.InDelta(t, q.W, n.W, 1e-12)
	})

	t.Run("zero quaternion maps to identity", func(t *testing.T) {
		t.Parallel()
		n := Normalize(models.JointOrientation{})
		assert.Equal(t, models.IdentityOrientation(), n)
	})

	t.Run("scales to unit length", func(t *testing.T) {
		t.Parallel()
		n := Normalize(models.JointOrientation{X: 0, Y: 0, Z: 0, W: 2})
		assert.InDelta(t, 1.0, Magnitude(n), 1e-12)
	})
}

func TestEulerRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []EulerAngles{
		{Roll: 0, Pitch: 0, Yaw: 0},
		{Roll: 0.4, Pitch: 0.2, Yaw: -1.3},
		{Roll: -1.1, Pitch: 0.7, Yaw: 2.9},
		{Roll: 2.5, Pitch: -0.9, Yaw: -2.8},
		{Roll: 0, Pitch: 0, Yaw: 179 * math.Pi / 180},
	}
	for _, e := range cases {
		q := FromEuler(e)
		back := FromEuler(ToEuler(q))

		// Allow the double-cover sign ambiguity q == -q.
		sign := 1.0
		if q.W*back.W+q.X*back.X+q.Y*back.Y+q.Z*back.Z < 0 {
			sign = -1.0
		}
		assert.InDelta(t, q.X, sign*back.X, 1e-6)
		assert.InDelta(t, q.Y, sign*back.Y, 1e-6)
		assert.InDelta(t, q.Z, sign*back.Z, 1e-6)
		assert.InDelta(t, q.W, sign*back.W, 1e-6)
	}
}

func TestToEulerGimbalClamp(t *testing.T) {
	t.Parallel()

	// Pitch exactly +90°: sin(pitch) saturates at 1.
	q := FromEuler(EulerAngles{Pitch: math.Pi / 2})
	e := ToEuler(q)
	assert.InDelta(t, math.Pi/2, e.Pitch, 1e-6)

	q = FromEuler(EulerAngles{Pitch: -math.Pi / 2})
	e = ToEuler(q)
	assert.InDelta(t, -math.Pi/2, e.Pitch, 1e-6)
}

func TestTwistVelocity(t *testing.T) {
	t.Parallel()

	t.Run("zero when dt is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, TwistVelocity(yawQuat(10), yawQuat(0), 0))
		assert.Zero(t, TwistVelocity(yawQuat(10), yawQuat(0), -1))
	})

	t.Run("simple backward difference", func(t *testing.T) {
		t.Parallel()
		v := TwistVelocity(yawQuat(12), yawQuat(10), DeltaTime)
		assert.InDelta(t, 2*models.FrameRate, v, 1e-6)
	})

	t.Run("wrap correction at the ±180° boundary", func(t *testing.T) {
		t.Parallel()
		v := TwistVelocity(yawQuat(-179), yawQuat(179), DeltaTime)
		// True delta is +2°, not -358°.
		require.InDelta(t, 2*models.FrameRate, v, 1e-6)
		naive := (-179.0 - 179.0) * models.FrameRate
		assert.Less(t, math.Abs(v), math.Abs(naive))
	})

	t.Run("wrap correction in the other direction", func(t *testing.T) {
		t.Parallel()
		v := TwistVelocity(yawQuat(179), yawQuat(-179), DeltaTime)
		assert.InDelta(t, -2*models.FrameRate, v, 1e-6)
	})
}

func TestExternalRotation(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 30.0, ExternalRotation(yawQuat(40), yawQuat(10)), 1e-6)
	// Negative differences wrap into [0, 360).
	assert.InDelta(t, 330.0, ExternalRotation(yawQuat(10), yawQuat(40)), 1e-6)
	// Boundary crossing uses the short way around.
	assert.InDelta(t, 2.0, ExternalRotation(yawQuat(-179), yawQuat(179)), 1e-6)
}

func TestTrunkSeparation(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 30.0, TrunkSeparation(yawQuat(10), yawQuat(40)), 1e-6)
	// Absolute separation is symmetric.
	assert.InDelta(t, 30.0, TrunkSeparation(yawQuat(40), yawQuat(10)), 1e-6)
	// Never exceeds 180.
	assert.InDelta(t, 160.0, TrunkSeparation(yawQuat(-100), yawQuat(100)), 1e-6)
}
