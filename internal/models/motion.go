package models

// JointPosition is a joint center in meters, already converted to the
// display coordinate frame: X horizontal, Y vertical, Z forward toward
// the target.
type JointPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// JointOrientation is a unit quaternion (x, y, z, w) expressing a joint's
// orientation in one capture frame. Ingestion repairs degenerate or
// non-unit quaternions, so stored values are always close to unit length.
type JointOrientation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IdentityOrientation returns the identity quaternion.
func IdentityOrientation() JointOrientation {
	return JointOrientation{W: 1}
}
