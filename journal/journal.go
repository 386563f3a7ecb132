// Package journal records Monte Carlo runs so results stay inspectable after
// the process exits. The simulation engine itself never journals; the CLI
// opts in per run.
package journal

import "time"

// RunRecord captures one Monte Carlo batch: its parameters and the
// aggregate statistics it produced.
type RunRecord struct {
	RunID            string
	CreatedAt        time.Time
	InitialPrice     float64
	AnnualReturn     float64
	AnnualVolatility float64
	HorizonYears     int
	TradingDays      int
	Trials           int
	Seed             int64

	MeanFinalPrice    float64
	LowerPercentile   float64
	UpperPercentile   float64
	ProbabilityOfLoss float64
}

// TrialRecord captures one trial within a run, keyed by (RunID, TrialIndex)
// so the raw trial order survives into storage.
type TrialRecord struct {
	RunID       string
	TrialIndex  int
	FinalPrice  float64
	CAGR        float64
	MaxDrawdown float64
	Loss        bool
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordTrials([]TrialRecord) error
	Close() error
}
