// Package report renders metric records and Monte Carlo summaries for
// humans. It owns all display formatting (percentages, currency, the
// "1 in N" odds framing) so the engine packages stay format-free.
package report

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/gbmsim/gbm"
	"github.com/rustyeddy/gbmsim/metrics"
	"github.com/rustyeddy/gbmsim/montecarlo"
)

// RenderText renders a single-path metrics record as a fixed-width report.
func RenderText(p gbm.Params, r metrics.Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Simulation: $%.2f over %d years (%d trading days/year)\n",
		p.InitialPrice, p.HorizonYears, p.TradingDaysPerYear)
	fmt.Fprintf(&sb, "  mu=%.4f sigma=%.4f\n\n", p.Mu, p.Sigma)

	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Final Price:", r.FinalPrice)
	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Expected Price:", r.ExpectedPrice)
	fmt.Fprintf(&sb, "%-24s %.2f%%\n", "CAGR:", r.CAGR*100)
	fmt.Fprintf(&sb, "%-24s %.2f%%\n", "Max Drawdown:", r.MaxDrawdown*100)
	fmt.Fprintf(&sb, "%-24s %v\n", "Loss (final < initial):", r.Loss)
	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Min Price:", r.MinPrice)
	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Max Price:", r.MaxPrice)
	fmt.Fprintf(&sb, "%-24s %.2f%%\n", "Positive Days:", r.PositiveDaysFraction*100)
	fmt.Fprintf(&sb, "%-24s %d days\n", "Longest Winning Streak:", r.LongestWinningStreak)
	fmt.Fprintf(&sb, "%-24s %d days\n", "Longest Losing Streak:", r.LongestLosingStreak)
	fmt.Fprintf(&sb, "%-24s %.6f\n", "Daily Drift:", r.DailyDrift)
	fmt.Fprintf(&sb, "%-24s %.6f\n", "Daily Volatility:", r.DailyVolatility)

	if ratio, err := r.VolatilityToDriftRatio(); err != nil {
		fmt.Fprintf(&sb, "%-24s undefined (zero drift)\n", "Volatility/Drift:")
	} else {
		fmt.Fprintf(&sb, "%-24s %.2f\n", "Volatility/Drift:", ratio)
	}

	return sb.String()
}

// RenderSummaryText renders a Monte Carlo summary.
func RenderSummaryText(p gbm.Params, seed int64, s montecarlo.Summary) string {
	var sb strings.Builder

	n := len(s.TrialFinalPrices)
	fmt.Fprintf(&sb, "Monte Carlo: %d trials of $%.2f over %d years (seed %d)\n\n",
		n, p.InitialPrice, p.HorizonYears, seed)

	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Mean Final Price:", s.MeanFinalPrice)
	fmt.Fprintf(&sb, "%-24s $%.2f\n", "Expected Price:", p.ExpectedPrice())
	fmt.Fprintf(&sb, "%-24s $%.2f .. $%.2f\n", "Percentile Interval:", s.LowerPercentile, s.UpperPercentile)
	fmt.Fprintf(&sb, "%-24s %s\n", "Probability of Loss:", lossOdds(s.ProbabilityOfLoss))

	return sb.String()
}

// lossOdds adds the "1 in N trials" framing next to the percentage. The odds
// form is display-only sugar derived from the empirical probability.
func lossOdds(p float64) string {
	if p <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%% (1 in %.1f trials)", p*100, 1/p)
}

// RenderTrialsCSV renders the raw per-trial results as CSV.
func RenderTrialsCSV(s montecarlo.Summary) string {
	var sb strings.Builder

	sb.WriteString("trial_index,final_price,cagr,max_drawdown,loss\n")

	for i, r := range s.Records {
		fmt.Fprintf(&sb, "%d,%.6f,%.6f,%.6f,%t\n",
			i,
			r.FinalPrice,
			r.CAGR,
			r.MaxDrawdown,
			r.Loss,
		)
	}

	return sb.String()
}
