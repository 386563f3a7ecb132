package gbm

import (
	"fmt"
	"math"
)

// Path is one simulated daily price trajectory, including the initial price
// at index 0. The caller that requested it owns the slice; downstream
// consumers treat it as read-only.
type Path []float64

// Final returns the last price of the trajectory.
func (t Path) Final() float64 {
	return t[len(t)-1]
}

// Steps returns the number of day-over-day moves in the trajectory.
func (t Path) Steps() int {
	return len(t) - 1
}

// Generate produces a GBM trajectory of TotalSteps()+1 prices.
//
// Each step's log-return is drawn as DailyDrift() + DailyVolatility()*z with
// z taken from src. Prices are the exponentiated cumulative sum of those
// log-returns, which keeps every price strictly positive for any finite draw.
// Sigma = 0 degenerates to a deterministic exponential-growth path; the
// formula needs no special casing for it.
func Generate(p Params, src Source) (Path, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}

	steps := p.TotalSteps()
	drift := p.DailyDrift()
	vol := p.DailyVolatility()

	path := make(Path, steps+1)
	path[0] = p.InitialPrice

	logReturn := 0.0
	for i := 1; i <= steps; i++ {
		logReturn += drift + vol*src.NormFloat64()
		path[i] = p.InitialPrice * math.Exp(logReturn)
	}

	return path, nil
}
