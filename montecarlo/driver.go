// Package montecarlo runs batches of independent GBM trials and aggregates
// their final-value statistics.
package montecarlo

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rustyeddy/gbmsim/gbm"
	"github.com/rustyeddy/gbmsim/metrics"
)

// Default percentile bounds of the final-price interval, in percent.
const (
	DefaultLowerBound = 2.5
	DefaultUpperBound = 97.5
)

// Driver runs Trials independent simulations of Params and summarizes them.
//
// Trial i draws from its own source seeded Seed+i, so trials are independent
// streams and a whole batch is reproducible from a single seed.
type Driver struct {
	Params gbm.Params
	Trials int
	Seed   int64

	// Workers caps how many trials run concurrently. 0 means NumCPU.
	Workers int

	// LowerBound/UpperBound are the percentile bounds of the final-price
	// interval, in percent. Both zero means the 2.5/97.5 defaults.
	LowerBound float64
	UpperBound float64
}

// Run executes the batch. Parameters are validated once before any trial
// launches; a degenerate metric inside one trial (zero drift) does not abort
// the batch, it stays representable in that trial's Record. Cancelling ctx
// stops launching new trials and returns the context error.
func (d Driver) Run(ctx context.Context) (Summary, error) {
	if err := d.Params.Validate(); err != nil {
		return Summary{}, err
	}
	if d.Trials < 1 {
		return Summary{}, fmt.Errorf("%w: trials must be >= 1, got %d", gbm.ErrInvalidParameter, d.Trials)
	}

	lower, upper := d.LowerBound, d.UpperBound
	if lower == 0 && upper == 0 {
		lower, upper = DefaultLowerBound, DefaultUpperBound
	}
	if lower < 0 || upper > 100 || lower >= upper {
		return Summary{}, fmt.Errorf("%w: percentile bounds %v/%v", gbm.ErrInvalidParameter, lower, upper)
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > d.Trials {
		workers = d.Trials
	}

	// Results are index-addressed so the collected sequence keeps trial
	// order no matter which worker finishes first.
	finals := make([]float64, d.Trials)
	records := make([]metrics.Record, d.Trials)
	errs := make([]error, d.Trials)

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				finals[i], records[i], errs[i] = d.runTrial(i)
			}
		}()
	}

feed:
	for i := 0; i < d.Trials; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	for _, err := range errs {
		if err != nil {
			return Summary{}, err
		}
	}

	return summarize(finals, records, lower, upper), nil
}

func (d Driver) runTrial(i int) (float64, metrics.Record, error) {
	src := gbm.NewSource(d.Seed + int64(i))

	path, err := gbm.Generate(d.Params, src)
	if err != nil {
		return 0, metrics.Record{}, fmt.Errorf("trial %d: %w", i, err)
	}

	rec, err := metrics.Compute(d.Params, path)
	if err != nil {
		return 0, metrics.Record{}, fmt.Errorf("trial %d: %w", i, err)
	}

	return path.Final(), rec, nil
}
