// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	trials *csv.Writer
	rf, tf *os.File
}

func NewCSV(runsPath, trialsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(trialsPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	fail := func(err error) (*CSVJournal, error) {
		rf.Close()
		tf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)

	if err := rw.Write([]string{"run_id", "created_at", "initial_price", "annual_return", "annual_volatility", "horizon_years", "trading_days", "trials", "seed", "mean_final_price", "lower_percentile", "upper_percentile", "probability_of_loss"}); err != nil {
		return fail(err)
	}
	if err := tw.Write([]string{"run_id", "trial_index", "final_price", "cagr", "max_drawdown", "loss"}); err != nil {
		return fail(err)
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return fail(err)
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return fail(err)
	}

	return &CSVJournal{rw, tw, rf, tf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.CreatedAt.Format(time.RFC3339),
		f(r.InitialPrice),
		f(r.AnnualReturn),
		f(r.AnnualVolatility),
		strconv.Itoa(r.HorizonYears),
		strconv.Itoa(r.TradingDays),
		strconv.Itoa(r.Trials),
		strconv.FormatInt(r.Seed, 10),
		f(r.MeanFinalPrice),
		f(r.LowerPercentile),
		f(r.UpperPercentile),
		f(r.ProbabilityOfLoss),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrials(trials []TrialRecord) error {
	for _, t := range trials {
		err := j.trials.Write([]string{
			t.RunID,
			strconv.Itoa(t.TrialIndex),
			f(t.FinalPrice),
			f(t.CAGR),
			f(t.MaxDrawdown),
			strconv.FormatBool(t.Loss),
		})
		if err != nil {
			return err
		}
	}

	j.trials.Flush()
	return j.trials.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.trials.Flush()
	if err := j.trials.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.tf.Close()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
