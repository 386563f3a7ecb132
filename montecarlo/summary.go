package montecarlo

import (
	"sort"

	"github.com/rustyeddy/gbmsim/metrics"
)

// Summary aggregates a batch of independent trials.
type Summary struct {
	// TrialFinalPrices holds one final price per trial, in trial order.
	TrialFinalPrices []float64

	// Records holds each trial's full metrics record, in trial order.
	// Degenerate per-trial metrics (e.g. an undefined volatility/drift
	// ratio) live inside their own record.
	Records []metrics.Record

	MeanFinalPrice  float64
	LowerPercentile float64
	UpperPercentile float64

	// ProbabilityOfLoss is the empirical fraction of trials whose final
	// price fell below the initial price: the mean of the per-trial Loss
	// indicators, which converges on the true loss probability by the law
	// of large numbers.
	ProbabilityOfLoss float64
}

func summarize(finals []float64, records []metrics.Record, lower, upper float64) Summary {
	losses := 0
	for _, r := range records {
		if r.Loss {
			losses++
		}
	}

	sorted := make([]float64, len(finals))
	copy(sorted, finals)
	sort.Float64s(sorted)

	return Summary{
		TrialFinalPrices:  finals,
		Records:           records,
		MeanFinalPrice:    mean(finals),
		LowerPercentile:   percentile(sorted, lower/100),
		UpperPercentile:   percentile(sorted, upper/100),
		ProbabilityOfLoss: float64(losses) / float64(len(records)),
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// percentile interpolates linearly between order statistics at the
// continuous index p*(n-1). sorted must be pre-sorted ascending and p in
// [0, 1]. The method is deterministic, so a fixed seed reproduces the exact
// interval.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
