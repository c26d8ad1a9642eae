package ingest

import (
	"fmt"

	"github.com/pitchlab/mocap-backend-go/internal/kinematics"
	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
)

// repairQuaternion validates a raw quaternion. Magnitudes below 0.1 are
// degenerate and replaced with identity; magnitudes off unit by more than
// 0.1 are renormalized. Small numerical noise passes through untouched.
// The second return reports whether a repair happened.
func repairQuaternion(q models.JointOrientation) (models.JointOrientation, bool) {
	mag := kinematics.Magnitude(q)
	switch {
	case mag < 0.1:
		return models.IdentityOrientation(), true
	case mag > 1.1 || mag < 0.9:
		return models.JointOrientation{X: q.X / mag, Y: q.Y / mag, Z: q.Z / mag, W: q.W / mag}, true
	default:
		return q, false
	}
}

// ExtractJointRotations maps rows to per-joint unit quaternions. A row
// must yield at least NumJoints×4 numeric values; each joint reads
// (x, y, z, w) from its block. Degenerate and non-unit quaternions are
// repaired in place with a diagnostic.
//
// Keyed by 0-based row index, the implicit frame number.
func ExtractJointRotations(rows [][]string, obs monitoring.Observer) map[int]map[models.JointName]models.JointOrientation {
	frames := make(map[int]map[models.JointName]models.JointOrientation, len(rows))
	minValues := models.NumJoints * 4

	for rowIdx, row := range rows {
		values := numericValues(row)
		if len(values) < minValues {
			obs.Observe(monitoring.Event{
				Kind:    monitoring.EventRowDropped,
				Frame:   rowIdx,
				Message: fmt.Sprintf("joint rotations row has %d numeric values, need %d", len(values), minValues),
			})
			continue
		}

		blockWidth := len(values) / models.NumJoints
		joints := make(map[models.JointName]models.JointOrientation, models.NumJoints)
		for i, name := range models.JointNames {
			base := i * blockWidth
			raw := models.JointOrientation{
				X: values[base],
				Y: values[base+1],
				Z: values[base+2],
				W: values[base+3],
			}
			q, repaired := repairQuaternion(raw)
			if repaired {
				obs.Observe(monitoring.Event{
					Kind:    monitoring.EventQuaternionRepaired,
					Frame:   rowIdx,
					Joint:   string(name),
					Message: fmt.Sprintf("magnitude %.4f", kinematics.Magnitude(raw)),
				})
			}
			joints[name] = q
		}
		frames[rowIdx] = joints
	}
	return frames
}
