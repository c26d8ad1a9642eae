package models

import "fmt"

// BiomechanicalMetrics is the per-frame metrics record shown on the
// analytics dashboard. PelvisVelocity, TrunkVelocity, ElbowTorque and
// ShoulderTorque are legacy field names kept for dashboard compatibility.
type BiomechanicalMetrics struct {
	PelvisTwistVelocity      float64 `json:"pelvisTwistVelocity"`      // deg/s about the vertical axis
	TrunkTwistVelocity       float64 `json:"trunkTwistVelocity"`       // deg/s about the vertical axis
	ShoulderExternalRotation float64 `json:"shoulderExternalRotation"` // degrees, [0, 360)
	TrunkPelvisSeparation    float64 `json:"trunkPelvisSeparation"`    // degrees, [0, 180]

	// Legacy dashboard aliases
	PelvisVelocity float64 `json:"pelvisVelocity"`
	TrunkVelocity  float64 `json:"trunkVelocity"`
	ElbowTorque    float64 `json:"elbowTorque"`
	ShoulderTorque float64 `json:"shoulderTorque"`

	Timestamp float64 `json:"timestamp"` // seconds, frameNumber / frameRate
}

// MetricKind enumerates the metric signals the dashboard can request.
// The enumeration is closed: every kind has a name, a display unit and an
// accessor, defined here once and shared by the deriver and the handlers.
type MetricKind int

const (
	MetricPelvisTwistVelocity MetricKind = iota
	MetricTrunkTwistVelocity
	MetricShoulderExternalRotation
	MetricTrunkPelvisSeparation
	MetricElbowTorque
	MetricShoulderTorque
)

// MetricKinds lists all selectable metric kinds in display order.
var MetricKinds = []MetricKind{
	MetricPelvisTwistVelocity,
	MetricTrunkTwistVelocity,
	MetricShoulderExternalRotation,
	MetricTrunkPelvisSeparation,
	MetricElbowTorque,
	MetricShoulderTorque,
}

// String returns the wire name of the metric kind.
func (k MetricKind) String() string {
	switch k {
	case MetricPelvisTwistVelocity:
		return "pelvisTwistVelocity"
	case MetricTrunkTwistVelocity:
		return "trunkTwistVelocity"
	case MetricShoulderExternalRotation:
		return "shoulderExternalRotation"
	case MetricTrunkPelvisSeparation:
		return "trunkPelvisSeparation"
	case MetricElbowTorque:
		return "elbowTorque"
	case MetricShoulderTorque:
		return "shoulderTorque"
	}
	return "unknown"
}

// Unit returns the display unit for the metric kind.
func (k MetricKind) Unit() string {
	switch k {
	case MetricPelvisTwistVelocity, MetricTrunkTwistVelocity:
		return "deg/s"
	case MetricShoulderExternalRotation, MetricTrunkPelvisSeparation:
		return "deg"
	case MetricElbowTorque, MetricShoulderTorque:
		return "Nm"
	}
	return ""
}

// ValueOf extracts this kind's scalar from a metrics record.
func (k MetricKind) ValueOf(m BiomechanicalMetrics) float64 {
	switch k {
	case MetricPelvisTwistVelocity:
		return m.PelvisTwistVelocity
	case MetricTrunkTwistVelocity:
		return m.TrunkTwistVelocity
	case MetricShoulderExternalRotation:
		return m.ShoulderExternalRotation
	case MetricTrunkPelvisSeparation:
		return m.TrunkPelvisSeparation
	case MetricElbowTorque:
		return m.ElbowTorque
	case MetricShoulderTorque:
		return m.ShoulderTorque
	}
	return 0
}

// ParseMetricKind maps a wire name back to its MetricKind.
func ParseMetricKind(name string) (MetricKind, error) {
	for _, k := range MetricKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown metric kind: %q", name)
}
