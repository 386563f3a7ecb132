package gbm

import "math/rand"

// Source yields independent standard-normal draws. The generator shifts and
// scales the draws by the daily drift and volatility itself, so a Source must
// not pre-scale them. *rand.Rand satisfies Source.
type Source interface {
	NormFloat64() float64
}

// NewSource returns a deterministic Source for the given seed. Reusing a seed
// reproduces the exact same trajectory, which is how tests and Monte Carlo
// trial streams stay reproducible.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
