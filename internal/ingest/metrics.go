package ingest

import (
	"fmt"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
)

// ExtractMetricRecords parses the optional precomputed metrics file:
// whitespace rows of at least four values in the order pelvis velocity,
// trunk velocity, elbow torque, shoulder torque. When this file is
// supplied the biomechanics deriver is bypassed for these frames.
//
// The measured velocities also populate the twist-velocity fields so the
// dashboard reads one record shape regardless of source.
func ExtractMetricRecords(rows [][]string, obs monitoring.Observer) map[int]models.BiomechanicalMetrics {
	records := make(map[int]models.BiomechanicalMetrics, len(rows))

	for rowIdx, row := range rows {
		values := numericValues(row)
		if len(values) < 4 {
			obs.Observe(monitoring.Event{
				Kind:    monitoring.EventRowDropped,
				Frame:   rowIdx,
				Message: fmt.Sprintf("metrics row has %d numeric values, need 4", len(values)),
			})
			continue
		}

		records[rowIdx] = models.BiomechanicalMetrics{
			PelvisTwistVelocity: values[0],
			TrunkTwistVelocity:  values[1],
			PelvisVelocity:      values[0],
			TrunkVelocity:       values[1],
			ElbowTorque:         values[2],
			ShoulderTorque:      values[3],
			Timestamp:           float64(rowIdx) * models.FrameInterval,
		}
	}
	return records
}
