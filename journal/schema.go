// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	initial_price REAL NOT NULL,
	annual_return REAL NOT NULL,
	annual_volatility REAL NOT NULL,
	horizon_years INTEGER NOT NULL,
	trading_days INTEGER NOT NULL,
	trials INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	mean_final_price REAL NOT NULL,
	lower_percentile REAL NOT NULL,
	upper_percentile REAL NOT NULL,
	probability_of_loss REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trials (
	run_id TEXT NOT NULL,
	trial_index INTEGER NOT NULL,
	final_price REAL NOT NULL,
	cagr REAL NOT NULL,
	max_drawdown REAL NOT NULL,
	loss INTEGER NOT NULL,
	PRIMARY KEY (run_id, trial_index)
);

CREATE INDEX IF NOT EXISTS idx_trials_run ON trials(run_id);
`
