// Package metrics derives risk/return statistics from one simulated
// trajectory. Everything here is a pure function of its inputs; the
// trajectory is never mutated.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/rustyeddy/gbmsim/gbm"
)

var (
	// ErrZeroDrift means the volatility/drift ratio is undefined because
	// the daily drift is exactly zero (mu == sigma^2/2).
	ErrZeroDrift = errors.New("daily drift is zero")

	// ErrNoSteps means the trajectory has fewer than two prices, so no
	// day-over-day statistics exist.
	ErrNoSteps = errors.New("trajectory has no daily moves")
)

// Record holds the derived statistics of a single trajectory. It is plain
// data with no behavior beyond the degenerate-ratio accessor.
type Record struct {
	FinalPrice    float64
	ExpectedPrice float64 // theoretical model mean at the horizon
	CAGR          float64

	// MaxDrawdown is the most negative peak-to-trough relative decline,
	// always <= 0 and exactly 0 for a non-decreasing trajectory.
	MaxDrawdown float64

	// Loss marks final < initial for this one trajectory. A population
	// probability of loss is the mean of this indicator across independent
	// trials (montecarlo.Summary.ProbabilityOfLoss), never this field alone.
	Loss bool

	MinPrice float64
	MaxPrice float64

	PositiveDaysFraction float64
	LongestWinningStreak int
	LongestLosingStreak  int

	DailyDrift      float64
	DailyVolatility float64
}

// VolatilityToDriftRatio returns DailyVolatility / DailyDrift. When the drift
// is exactly zero the ratio is undefined and ErrZeroDrift is returned instead
// of a silent Inf. Keeping this as an accessor lets a Monte Carlo batch carry
// a degenerate trial without aborting.
func (r Record) VolatilityToDriftRatio() (float64, error) {
	if r.DailyDrift == 0 {
		return 0, fmt.Errorf("volatility/drift ratio: %w", ErrZeroDrift)
	}
	return r.DailyVolatility / r.DailyDrift, nil
}

// Compute derives a Record from one trajectory in a single linear pass with
// O(1) extra state (running peak, extrema, streak counters).
//
// The trajectory's own first price is the baseline for CAGR and the loss
// indicator; p supplies the horizon and the daily drift/volatility fields,
// so the trajectory must hold exactly TotalSteps()+1 prices or the
// horizon-based metrics would describe a different process.
func Compute(p gbm.Params, path gbm.Path) (Record, error) {
	if err := p.Validate(); err != nil {
		return Record{}, err
	}
	if len(path) < 2 {
		return Record{}, fmt.Errorf("%w: got %d prices", ErrNoSteps, len(path))
	}
	if want := p.TotalSteps() + 1; len(path) != want {
		return Record{}, fmt.Errorf("%w: trajectory has %d prices, parameters imply %d",
			gbm.ErrInvalidParameter, len(path), want)
	}

	initial := path[0]
	if initial <= 0 {
		return Record{}, fmt.Errorf("%w: trajectory starts at %v", gbm.ErrInvalidParameter, initial)
	}

	final := path.Final()
	cagr := math.Pow(final/initial, 1.0/float64(p.HorizonYears)) - 1

	peak := initial
	maxDrawdown := 0.0
	minPrice, maxPrice := initial, initial
	upDays := 0
	winRun, lossRun := 0, 0
	bestWin, bestLoss := 0, 0

	for i, price := range path {
		if price > peak {
			peak = price
		}
		if dd := (price - peak) / peak; dd < maxDrawdown {
			maxDrawdown = dd
		}
		if price < minPrice {
			minPrice = price
		}
		if price > maxPrice {
			maxPrice = price
		}

		if i == 0 {
			continue
		}
		switch prev := path[i-1]; {
		case price > prev:
			upDays++
			winRun++
			lossRun = 0
			if winRun > bestWin {
				bestWin = winRun
			}
		case price < prev:
			lossRun++
			winRun = 0
			if lossRun > bestLoss {
				bestLoss = lossRun
			}
		default:
			// flat day: neither up nor down, breaks both streaks
			winRun, lossRun = 0, 0
		}
	}

	return Record{
		FinalPrice:           final,
		ExpectedPrice:        p.ExpectedPrice(),
		CAGR:                 cagr,
		MaxDrawdown:          maxDrawdown,
		Loss:                 final < initial,
		MinPrice:             minPrice,
		MaxPrice:             maxPrice,
		PositiveDaysFraction: float64(upDays) / float64(path.Steps()),
		LongestWinningStreak: bestWin,
		LongestLosingStreak:  bestLoss,
		DailyDrift:           p.DailyDrift(),
		DailyVolatility:      p.DailyVolatility(),
	}, nil
}
