// Package gbm simulates asset-price paths under geometric Brownian motion.
package gbm

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTradingDays is the assumed number of trading days per calendar year.
const DefaultTradingDays = 260

// ErrInvalidParameter reports a simulation parameter outside its valid range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params fully describes one GBM simulation.
//
// Mu and Sigma are annualized. The daily quantities (Dt, DailyDrift,
// DailyVolatility) are derived on demand so they can never fall out of sync
// with their source parameters.
type Params struct {
	InitialPrice       float64 // starting price, must be > 0
	Mu                 float64 // expected annual return (drift)
	Sigma              float64 // annual volatility, must be >= 0
	HorizonYears       int     // simulation horizon, must be > 0
	TradingDaysPerYear int     // steps per year, must be > 0
}

// Validate checks every parameter range. It fails fast so no simulation work
// starts on a bad parameter set.
func (p Params) Validate() error {
	if p.InitialPrice <= 0 {
		return fmt.Errorf("%w: initial price must be positive, got %v", ErrInvalidParameter, p.InitialPrice)
	}
	if p.Sigma < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, p.Sigma)
	}
	if p.HorizonYears <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d years", ErrInvalidParameter, p.HorizonYears)
	}
	if p.TradingDaysPerYear <= 0 {
		return fmt.Errorf("%w: trading days per year must be positive, got %d", ErrInvalidParameter, p.TradingDaysPerYear)
	}
	return nil
}

// Dt returns the fraction of a year covered by one step.
func (p Params) Dt() float64 {
	return 1.0 / float64(p.TradingDaysPerYear)
}

// TotalSteps returns the number of daily steps over the whole horizon.
func (p Params) TotalSteps() int {
	return p.HorizonYears * p.TradingDaysPerYear
}

// DailyDrift returns the mean of one day's log-return, (mu - sigma^2/2) * dt.
func (p Params) DailyDrift() float64 {
	return (p.Mu - 0.5*p.Sigma*p.Sigma) * p.Dt()
}

// DailyVolatility returns the standard deviation of one day's log-return,
// sigma * sqrt(dt).
func (p Params) DailyVolatility() float64 {
	return p.Sigma * math.Sqrt(p.Dt())
}

// ExpectedPrice returns the theoretical mean of the process at the horizon,
// initial * exp(mu * years). It is a model quantity, not a path statistic.
func (p Params) ExpectedPrice() float64 {
	return p.InitialPrice * math.Exp(p.Mu*float64(p.HorizonYears))
}
