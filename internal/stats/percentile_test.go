package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	t.Parallel()

	values := []float64{5, 1, 3, 2, 4}

	assert.Equal(t, 3.0, Percentile(values, 50))
	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 5.0, Percentile(values, 100))
	assert.InDelta(t, 1.5, Percentile(values, 12.5), 1e-9)

	// Out-of-range percentiles clamp.
	assert.Equal(t, 1.0, Percentile(values, -10))
	assert.Equal(t, 5.0, Percentile(values, 150))

	// Empty input.
	assert.Zero(t, Percentile(nil, 50))
}
