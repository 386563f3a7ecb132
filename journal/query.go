package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created_at, initial_price, annual_return, annual_volatility,
		       horizon_years, trading_days, trials, seed,
		       mean_final_price, lower_percentile, upper_percentile, probability_of_loss
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.CreatedAt,
		&rec.InitialPrice,
		&rec.AnnualReturn,
		&rec.AnnualVolatility,
		&rec.HorizonYears,
		&rec.TradingDays,
		&rec.Trials,
		&rec.Seed,
		&rec.MeanFinalPrice,
		&rec.LowerPercentile,
		&rec.UpperPercentile,
		&rec.ProbabilityOfLoss,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListTrialsByRun returns a run's trials in trial order.
func (j *SQLite) ListTrialsByRun(runID string) ([]TrialRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, trial_index, final_price, cagr, max_drawdown, loss
		FROM trials
		WHERE run_id = ?
		ORDER BY trial_index ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrialRecord
	for rows.Next() {
		var rec TrialRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.TrialIndex,
			&rec.FinalPrice,
			&rec.CAGR,
			&rec.MaxDrawdown,
			&rec.Loss,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
