package ingest

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/monitoring"
)

// centersRow builds one row with blockWidth values per joint; the first
// three values of every block are x, y, z and the rest are padding.
func centersRow(x, y, z float64, blockWidth int) []string {
	row := make([]string, 0, models.NumJoints*blockWidth)
	for i := 0; i < models.NumJoints; i++ {
		row = append(row,
			strconv.FormatFloat(x, 'f', -1, 64),
			strconv.FormatFloat(y, 'f', -1, 64),
			strconv.FormatFloat(z, 'f', -1, 64),
		)
		for p := 3; p < blockWidth; p++ {
			row = append(row, "9999") // padding channels must be ignored
		}
	}
	return row
}

func TestExtractJointCentersPartition(t *testing.T) {
	t.Parallel()

	t.Run("exact 3 values per joint", func(t *testing.T) {
		t.Parallel()
		frames := ExtractJointCenters([][]string{centersRow(1, 2, 3, 3)}, monitoring.NopObserver{})
		require.Len(t, frames, 1)
		require.Len(t, frames[0], models.NumJoints)
	})

	t.Run("12 values per joint reads only the first 3", func(t *testing.T) {
		t.Parallel()
		frames := ExtractJointCenters([][]string{centersRow(1, 2, 3, 12)}, monitoring.NopObserver{})
		require.Len(t, frames, 1)
		require.Len(t, frames[0], models.NumJoints)
		// Padding is 9999 (millimeter range); the real coords are meters.
		pos := frames[0][models.Head]
		assert.InDelta(t, 1.0, pos.X, 1e-9)
	})

	t.Run("4 values per joint", func(t *testing.T) {
		t.Parallel()
		frames := ExtractJointCenters([][]string{centersRow(1, 2, 3, 4)}, monitoring.NopObserver{})
		require.Len(t, frames, 1)
	})
}

func TestExtractJointCentersAxisRemap(t *testing.T) {
	t.Parallel()

	frames := ExtractJointCenters([][]string{centersRow(1, 2, 3, 3)}, monitoring.NopObserver{})
	pos := frames[0][models.Pelvis]
	// Capture (x, y, z) = (1, 2, 3): z becomes vertical, y becomes forward.
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, 3.0, pos.Y, 1e-9)
	assert.InDelta(t, 2.0, pos.Z, 1e-9)
}

func TestExtractJointCentersScaleBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		max   float64
		scale float64
	}{
		{"exactly 10 is meters", 10, 1},
		{"just over 10 is centimeters", 10.001, 0.01},
		{"exactly 1000 is centimeters", 1000, 0.01},
		{"just over 1000 is millimeters", 1000.001, 0.001},
		{"tiny nonzero is kilometers", 0.0005, 1000},
		{"meters stay meters", 1.5, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			frames := ExtractJointCenters([][]string{centersRow(tc.max, 0, 0, 3)}, monitoring.NopObserver{})
			pos := frames[0][models.Head]
			assert.InDelta(t, tc.max*tc.scale, pos.X, 1e-9)
		})
	}
}

func TestExtractJointCentersMalformedRows(t *testing.T) {
	t.Parallel()

	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = centersRow(float64(i), 0, 0, 3)
	}
	rows[5] = []string{"1.0", "2.0"} // too short, must be dropped

	rec := &monitoring.Recorder{}
	frames := ExtractJointCenters(rows, rec)

	assert.Len(t, frames, 9)
	_, ok := frames[5]
	assert.False(t, ok, "dropped row must leave a gap, not shift frames")
	assert.Equal(t, 1, rec.Count(monitoring.EventRowDropped))
}

func TestExtractJointCentersNonFiniteClamped(t *testing.T) {
	t.Parallel()

	row := centersRow(1, 2, 3, 3)
	row[0] = "NaN" // head x
	frames := ExtractJointCenters([][]string{row}, monitoring.NopObserver{})
	require.Len(t, frames, 1)
	assert.Zero(t, frames[0][models.Head].X)
}

func TestExtractJointCentersOverflowKeepsColumnAlignment(t *testing.T) {
	t.Parallel()

	row := centersRow(1, 2, 3, 3)
	row[0] = "1e400" // overflows float64 to +Inf

	frames := ExtractJointCenters([][]string{row}, monitoring.NopObserver{})
	require.Len(t, frames, 1)

	// The overflowed coordinate clamps to zero but still occupies its
	// column, so later joints keep their own values.
	assert.Zero(t, frames[0][models.Head].X)
	pos := frames[0][models.Pelvis]
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, 3.0, pos.Y, 1e-9)
	assert.InDelta(t, 2.0, pos.Z, 1e-9)
}

func TestExtractJointCentersEmptyInput(t *testing.T) {
	t.Parallel()

	frames := ExtractJointCenters(nil, monitoring.NopObserver{})
	assert.Empty(t, frames)
}

func ExampleExtractJointCenters() {
	frames := ExtractJointCenters([][]string{centersRow(1500, 0, 900, 3)}, monitoring.NopObserver{})
	pos := frames[0][models.Head]
	fmt.Printf("%.1f %.1f %.1f\n", pos.X, pos.Y, pos.Z)
	// Output: 1.5 0.9 0.0
}
