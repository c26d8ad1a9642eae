// Package biomech turns per-frame joint rotations into dashboard metrics.
// When the rotation signal is degenerate (placeholder identity exports are
// common) it substitutes a clearly-flagged synthetic demonstration curve
// instead of presenting a dead dashboard.
package biomech

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pitchlab/mocap-backend-go/internal/kinematics"
	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
)

const (
	// identityEpsilon bounds how far a quaternion may sit from identity
	// and still count as a placeholder.
	identityEpsilon = 1e-6

	// prefixFrames is how many leading frames the pre-check inspects.
	prefixFrames = 10

	// validFraction is the minimum share of above-threshold frames for a
	// derived result to be accepted.
	validFraction = 0.1

	// Per-metric near-zero thresholds for the validity count.
	velocityThreshold = 1.0 // deg/s
	angleThreshold    = 1.0 // deg
)

// Torque proxies for the legacy dashboard fields, scaled from angular
// velocity. These are display stand-ins, not inverse dynamics.
const (
	elbowTorqueScale    = 0.04
	shoulderTorqueScale = 0.05
)

// Result is the outcome of one derivation pass.
type Result struct {
	// Metrics holds one record per input frame, keyed by frame number.
	Metrics map[int]models.BiomechanicalMetrics
	// UsingFallback is true when the derived signal was degenerate and
	// Metrics holds synthetic demonstration data.
	UsingFallback bool
	// Summary describes the derived pelvis velocity signal; zero when the
	// prefix check short-circuited to fallback.
	Summary SignalSummary
}

// SignalSummary carries basic statistics of the derived signal, attached
// to the degeneracy diagnostic.
type SignalSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Max    float64 `json:"max"`
}

// Deriver computes biomechanical metrics from rotation frames.
type Deriver struct {
	obs monitoring.Observer
	rng *rand.Rand
}

// NewDeriver builds a deriver. The random source drives fallback jitter;
// pass a fixed-seed source for reproducible output in tests, or nil for a
// production default.
func NewDeriver(obs monitoring.Observer, rng *rand.Rand) *Deriver {
	if obs == nil {
		obs = monitoring.NewLogObserver()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Deriver{obs: obs, rng: rng}
}

// Derive produces one metrics record per rotation frame, invoking the
// kinematics engine with each frame and its immediate predecessor. The
// first frame has no predecessor and reports zero velocities.
func (d *Deriver) Derive(rotations map[int]map[models.JointName]models.JointOrientation) Result {
	frames := sortedFrames(rotations)
	if len(frames) == 0 {
		return Result{Metrics: map[int]models.BiomechanicalMetrics{}}
	}

	if allIdentityPrefix(rotations, frames) {
		d.obs.Observe(monitoring.Event{
			Kind:    monitoring.EventFallbackTriggered,
			Frame:   -1,
			Message: "leading frames are all identity rotations; synthesizing demonstration metrics",
		})
		return Result{Metrics: d.synthesize(frames), UsingFallback: true}
	}

	metrics := make(map[int]models.BiomechanicalMetrics, len(frames))
	pelvisSeries := make([]float64, 0, len(frames))
	valid := 0

	for i, frame := range frames {
		joints := rotations[frame]
		m := models.BiomechanicalMetrics{
			Timestamp: float64(frame) * models.FrameInterval,
		}

		if i > 0 {
			prev := rotations[frames[i-1]]
			m.PelvisTwistVelocity = kinematics.TwistVelocity(
				orientationOf(joints, models.Pelvis), orientationOf(prev, models.Pelvis), kinematics.DeltaTime)
			m.TrunkTwistVelocity = kinematics.TwistVelocity(
				orientationOf(joints, models.Neck), orientationOf(prev, models.Neck), kinematics.DeltaTime)
		}
		m.ShoulderExternalRotation = kinematics.ExternalRotation(
			orientationOf(joints, models.RightShoulder), orientationOf(joints, models.Neck))
		m.TrunkPelvisSeparation = kinematics.TrunkSeparation(
			orientationOf(joints, models.Pelvis), orientationOf(joints, models.Neck))

		m.PelvisVelocity = m.PelvisTwistVelocity
		m.TrunkVelocity = m.TrunkTwistVelocity
		m.ElbowTorque = elbowTorqueScale * math.Abs(m.TrunkTwistVelocity)
		m.ShoulderTorque = shoulderTorqueScale * math.Abs(m.PelvisTwistVelocity)

		if frameIsValid(m) {
			valid++
		}
		pelvisSeries = append(pelvisSeries, m.PelvisTwistVelocity)
		metrics[frame] = m
	}

	summary := summarize(pelvisSeries)
	if float64(valid)/float64(len(frames)) < validFraction {
		d.obs.Observe(monitoring.Event{
			Kind:  monitoring.EventFallbackTriggered,
			Frame: -1,
			Message: fmt.Sprintf("derived signal is near-zero (%d/%d valid frames, mean %.3f deg/s); synthesizing demonstration metrics",
				valid, len(frames), summary.Mean),
		})
		return Result{Metrics: d.synthesize(frames), UsingFallback: true, Summary: summary}
	}

	return Result{Metrics: metrics, Summary: summary}
}

// sortedFrames returns the frame numbers in ascending order.
func sortedFrames(rotations map[int]map[models.JointName]models.JointOrientation) []int {
	frames := make([]int, 0, len(rotations))
	for frame := range rotations {
		frames = append(frames, frame)
	}
	sort.Ints(frames)
	return frames
}

// orientationOf looks up a joint, defaulting to identity for partial
// coverage.
func orientationOf(joints map[models.JointName]models.JointOrientation, name models.JointName) models.JointOrientation {
	if q, ok := joints[name]; ok {
		return q
	}
	return models.IdentityOrientation()
}

// allIdentityPrefix reports whether no joint in the leading frames
// deviates from identity beyond identityEpsilon.
func allIdentityPrefix(rotations map[int]map[models.JointName]models.JointOrientation, frames []int) bool {
	n := len(frames)
	if n > prefixFrames {
		n = prefixFrames
	}
	for _, frame := range frames[:n] {
		for _, q := range rotations[frame] {
			if math.Abs(q.X) > identityEpsilon ||
				math.Abs(q.Y) > identityEpsilon ||
				math.Abs(q.Z) > identityEpsilon ||
				math.Abs(q.W-1) > identityEpsilon {
				return false
			}
		}
	}
	return true
}

// frameIsValid reports whether any metric clears its near-zero threshold.
func frameIsValid(m models.BiomechanicalMetrics) bool {
	return math.Abs(m.PelvisTwistVelocity) > velocityThreshold ||
		math.Abs(m.TrunkTwistVelocity) > velocityThreshold ||
		m.ShoulderExternalRotation > angleThreshold ||
		m.TrunkPelvisSeparation > angleThreshold
}

// summarize computes basic statistics of a derived series.
func summarize(series []float64) SignalSummary {
	if len(series) == 0 {
		return SignalSummary{}
	}
	max := series[0]
	for _, v := range series[1:] {
		if v > max {
			max = v
		}
	}
	sd := 0.0
	if len(series) > 1 {
		sd = stat.StdDev(series, nil)
	}
	return SignalSummary{
		Mean:   stat.Mean(series, nil),
		StdDev: sd,
		Max:    max,
	}
}
