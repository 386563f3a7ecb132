package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created_at, initial_price, annual_return, annual_volatility,
		 horizon_years, trading_days, trials, seed,
		 mean_final_price, lower_percentile, upper_percentile, probability_of_loss)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.CreatedAt, r.InitialPrice, r.AnnualReturn, r.AnnualVolatility,
		r.HorizonYears, r.TradingDays, r.Trials, r.Seed,
		r.MeanFinalPrice, r.LowerPercentile, r.UpperPercentile, r.ProbabilityOfLoss,
	)
	return err
}

// RecordTrials inserts all trial rows of one run inside a single transaction.
func (j *SQLite) RecordTrials(trials []TrialRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trials
		(run_id, trial_index, final_price, cagr, max_drawdown, loss)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range trials {
		if _, err := stmt.Exec(t.RunID, t.TrialIndex, t.FinalPrice, t.CAGR, t.MaxDrawdown, t.Loss); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
