// Package ingest maps parsed numeric rows onto the joint model: 3D joint
// centers, orientation quaternions and the optional precomputed metrics
// file. Rows that cannot satisfy an extractor's minimum are dropped with
// a diagnostic, never a failure.
package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
)

// numericValues converts a row's cells to floats, skipping cells that are
// not parseable numbers. A literal that overflows float64 keeps its column:
// ParseFloat still returns ±Inf for it, and the extractors clamp non-finite
// coordinates later, so dropping it would misalign the row's partition.
func numericValues(row []string) []float64 {
	values := make([]float64, 0, len(row))
	for _, cell := range row {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// scaleFactor picks the unit conversion for one joint from the magnitude
// of its largest coordinate. Capture exports variously use millimeters,
// centimeters or (rarely, after a bad export) kilometers; everything is
// normalized to meters. Check order pins the boundary policy: exactly
// 1000 reads as centimeters, exactly 10 as meters.
func scaleFactor(x, y, z float64) float64 {
	max := math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
	switch {
	case max > 1000:
		return 0.001 // millimeters
	case max > 10:
		return 0.01 // centimeters
	case max < 0.001 && max > 0:
		return 1000 // kilometers
	default:
		return 1
	}
}

// finiteOrZero clamps NaN and ±Inf to zero.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ExtractJointCenters maps rows to per-joint positions in meters in the
// display frame. A row must yield at least NumJoints×3 numeric values;
// shorter rows are dropped with a warning. Columns are partitioned into
// NumJoints equal blocks, so layouts with 3, 4 or 12 values per joint all
// work: only the first three values of each block are read.
//
// The returned map is keyed by 0-based row index (after header removal),
// which is the implicit frame number; dropped rows leave gaps.
func ExtractJointCenters(rows [][]string, obs monitoring.Observer) map[int]map[models.JointName]models.JointPosition {
	frames := make(map[int]map[models.JointName]models.JointPosition, len(rows))
	minValues := models.NumJoints * 3

	for rowIdx, row := range rows {
		values := numericValues(row)
		if len(values) < minValues {
			obs.Observe(monitoring.Event{
				Kind:    monitoring.EventRowDropped,
				Frame:   rowIdx,
				Message: fmt.Sprintf("joint centers row has %d numeric values, need %d", len(values), minValues),
			})
			continue
		}

		blockWidth := len(values) / models.NumJoints
		joints := make(map[models.JointName]models.JointPosition, models.NumJoints)
		for i, name := range models.JointNames {
			base := i * blockWidth
			x := values[base]
			y := values[base+1]
			z := values[base+2]

			scale := scaleFactor(x, y, z)

			// Fixed axis contract with the renderer: capture z is
			// vertical, capture y points at the target.
			joints[name] = models.JointPosition{
				X: finiteOrZero(x * scale),
				Y: finiteOrZero(z * scale),
				Z: finiteOrZero(y * scale),
			}
		}
		frames[rowIdx] = joints
	}
	return frames
}
