package biomech

import (
	"math"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// Pitching phase boundaries over normalized time t in [0, 1].
const (
	phaseWindupEnd  = 0.3 // windup
	phaseStrideEnd  = 0.6 // stride / acceleration
	phaseReleaseEnd = 0.7 // release
	// follow-through runs to 1.0
)

// Curve peaks, loosely matching published elite-pitcher magnitudes.
const (
	pelvisPeak     = 700.0 // deg/s
	trunkPeak      = 950.0 // deg/s
	externalPeak   = 178.0 // deg
	separationPeak = 45.0  // deg
	jitterAmount   = 0.03  // ±3% multiplicative noise
)

// synthesize produces the deterministic phase-piecewise demonstration
// curve, one record per frame, with bounded jitter from the deriver's
// injected random source. The shape is windup ramp, acceleration surge,
// release peak, follow-through decay.
func (d *Deriver) synthesize(frames []int) map[int]models.BiomechanicalMetrics {
	metrics := make(map[int]models.BiomechanicalMetrics, len(frames))
	for i, frame := range frames {
		t := 0.0
		if len(frames) > 1 {
			t = float64(i) / float64(len(frames)-1)
		}

		m := models.BiomechanicalMetrics{
			PelvisTwistVelocity:      d.jitter(pelvisCurve(t)),
			TrunkTwistVelocity:       d.jitter(trunkCurve(t)),
			ShoulderExternalRotation: d.jitter(externalRotationCurve(t)),
			TrunkPelvisSeparation:    d.jitter(separationCurve(t)),
			Timestamp:                float64(frame) * models.FrameInterval,
		}
		m.PelvisVelocity = m.PelvisTwistVelocity
		m.TrunkVelocity = m.TrunkTwistVelocity
		m.ElbowTorque = elbowTorqueScale * math.Abs(m.TrunkTwistVelocity)
		m.ShoulderTorque = shoulderTorqueScale * math.Abs(m.PelvisTwistVelocity)

		metrics[frame] = m
	}
	return metrics
}

// jitter applies bounded multiplicative noise.
func (d *Deriver) jitter(v float64) float64 {
	return v * (1 + (d.rng.Float64()*2-1)*jitterAmount)
}

// pelvisCurve rises through windup and acceleration, peaks at release and
// decays through follow-through.
func pelvisCurve(t float64) float64 {
	switch {
	case t < phaseWindupEnd:
		return 0.15 * pelvisPeak * (t / phaseWindupEnd)
	case t < phaseStrideEnd:
		return pelvisPeak * (0.15 + 0.75*(t-phaseWindupEnd)/(phaseStrideEnd-phaseWindupEnd))
	case t < phaseReleaseEnd:
		return pelvisPeak * (0.9 + 0.1*(t-phaseStrideEnd)/(phaseReleaseEnd-phaseStrideEnd))
	default:
		return pelvisPeak * (1 - 0.85*(t-phaseReleaseEnd)/(1-phaseReleaseEnd))
	}
}

// trunkCurve lags the pelvis and peaks higher, the usual proximal-distal
// sequencing shape.
func trunkCurve(t float64) float64 {
	switch {
	case t < phaseWindupEnd:
		return 0.1 * trunkPeak * (t / phaseWindupEnd)
	case t < phaseStrideEnd:
		return trunkPeak * (0.1 + 0.7*(t-phaseWindupEnd)/(phaseStrideEnd-phaseWindupEnd))
	case t < phaseReleaseEnd:
		return trunkPeak * (0.8 + 0.2*(t-phaseStrideEnd)/(phaseReleaseEnd-phaseStrideEnd))
	default:
		return trunkPeak * (1 - 0.9*(t-phaseReleaseEnd)/(1-phaseReleaseEnd))
	}
}

// externalRotationCurve builds to maximum layback just before release.
func externalRotationCurve(t float64) float64 {
	switch {
	case t < phaseWindupEnd:
		return 20 + 30*(t/phaseWindupEnd)
	case t < phaseStrideEnd:
		return 50 + 100*(t-phaseWindupEnd)/(phaseStrideEnd-phaseWindupEnd)
	case t < phaseReleaseEnd:
		return 150 + (externalPeak-150)*(t-phaseStrideEnd)/(phaseReleaseEnd-phaseStrideEnd)
	default:
		return externalPeak - 90*(t-phaseReleaseEnd)/(1-phaseReleaseEnd)
	}
}

// separationCurve peaks during acceleration as the trunk lags the pelvis,
// then closes out through release.
func separationCurve(t float64) float64 {
	switch {
	case t < phaseWindupEnd:
		return 5 + 10*(t/phaseWindupEnd)
	case t < phaseStrideEnd:
		return 15 + (separationPeak-15)*(t-phaseWindupEnd)/(phaseStrideEnd-phaseWindupEnd)
	case t < phaseReleaseEnd:
		return separationPeak - 20*(t-phaseStrideEnd)/(phaseReleaseEnd-phaseStrideEnd)
	default:
		return 25 - 20*(t-phaseReleaseEnd)/(1-phaseReleaseEnd)
	}
}
