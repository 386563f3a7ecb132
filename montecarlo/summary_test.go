package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 5.0, mean([]float64{5}))
	assert.InDelta(t, 2.5, mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestPercentileEdges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, percentile(nil, 0.5))
	assert.Equal(t, 7.0, percentile([]float64{7}, 0.975))

	sorted := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 10.0, percentile(sorted, 0))
	assert.Equal(t, 50.0, percentile(sorted, 1))
	assert.Equal(t, 30.0, percentile(sorted, 0.5))
}

func TestPercentileInterpolates(t *testing.T) {
	t.Parallel()

	sorted := []float64{10, 20, 30, 40, 50}

	// Continuous index 0.25*(5-1) = 1.0 lands exactly on 20; 0.3*(5-1) =
	// 1.2 interpolates between 20 and 30.
	assert.InDelta(t, 20.0, percentile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 22.0, percentile(sorted, 0.3), 1e-12)

	// Default bounds on [0..100]: 2.5% of the way through 101 points.
	vals := make([]float64, 101)
	for i := range vals {
		vals[i] = float64(i)
	}
	assert.InDelta(t, 2.5, percentile(vals, 0.025), 1e-12)
	assert.InDelta(t, 97.5, percentile(vals, 0.975), 1e-12)
}
