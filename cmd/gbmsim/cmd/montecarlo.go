package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/gbmsim/config"
	"github.com/rustyeddy/gbmsim/gbm"
	"github.com/rustyeddy/gbmsim/journal"
	"github.com/rustyeddy/gbmsim/montecarlo"
	"github.com/rustyeddy/gbmsim/pkg/id"
	"github.com/rustyeddy/gbmsim/report"
	"github.com/spf13/cobra"
)

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Run many independent trials and aggregate final-value statistics",
	Long: `Montecarlo runs n independent path simulations, collects each trial's
final price and loss indicator, and reports the mean final price, a
percentile interval and the empirical probability of loss.

Trials are reproducible: trial i always draws from a stream seeded seed+i.

Example:
  gbmsim montecarlo --trials 10000 --seed 42 --db runs.sqlite`,
	RunE: runMonteCarlo,
}

var (
	mcConfigPath string
	mcPrice      float64
	mcReturn     float64
	mcVol        float64
	mcYears      int
	mcDays       int
	mcSeed       int64
	mcTrials     int
	mcWorkers    int
	mcLower      float64
	mcUpper      float64
	mcDBPath     string
	mcRunsCSV    string
	mcTrialsCSV  string
)

func init() {
	rootCmd.AddCommand(montecarloCmd)

	montecarloCmd.Flags().StringVarP(&mcConfigPath, "config", "c", "", "config file (flags are ignored when set)")
	montecarloCmd.Flags().Float64VarP(&mcPrice, "price", "p", 100, "initial price")
	montecarloCmd.Flags().Float64VarP(&mcReturn, "return", "r", 0.08, "expected annual return (mu)")
	montecarloCmd.Flags().Float64VarP(&mcVol, "volatility", "v", 0.20, "annual volatility (sigma)")
	montecarloCmd.Flags().IntVarP(&mcYears, "years", "y", 30, "simulation horizon in years")
	montecarloCmd.Flags().IntVar(&mcDays, "days", gbm.DefaultTradingDays, "trading days per year")
	montecarloCmd.Flags().Int64Var(&mcSeed, "seed", 42, "base random seed (trial i uses seed+i)")

	montecarloCmd.Flags().IntVarP(&mcTrials, "trials", "n", 1000, "number of independent trials")
	montecarloCmd.Flags().IntVarP(&mcWorkers, "workers", "w", 0, "concurrent trials (0 = NumCPU)")
	montecarloCmd.Flags().Float64Var(&mcLower, "lower", montecarlo.DefaultLowerBound, "lower percentile bound (percent)")
	montecarloCmd.Flags().Float64Var(&mcUpper, "upper", montecarlo.DefaultUpperBound, "upper percentile bound (percent)")

	montecarloCmd.Flags().StringVarP(&mcDBPath, "db", "d", "", "journal run to this SQLite DB")
	montecarloCmd.Flags().StringVar(&mcRunsCSV, "runs-csv", "", "journal run summary to this CSV file")
	montecarloCmd.Flags().StringVar(&mcTrialsCSV, "trials-csv", "", "journal per-trial rows to this CSV file")
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	driver, jnl, err := driverFromFlags()
	if err != nil {
		return err
	}
	if jnl != nil {
		defer jnl.Close()
	}

	summary, err := driver.Run(context.Background())
	if err != nil {
		return fmt.Errorf("montecarlo: %w", err)
	}

	fmt.Print(report.RenderSummaryText(driver.Params, driver.Seed, summary))

	if jnl != nil {
		runID := id.NewGenerator().New()
		if err := journalRun(jnl, runID, driver, summary); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		fmt.Printf("\nJournaled run %s\n", runID)
	}

	return nil
}

func driverFromFlags() (montecarlo.Driver, journal.Journal, error) {
	if mcConfigPath != "" {
		cfg, err := config.LoadFromFile(mcConfigPath)
		if err != nil {
			return montecarlo.Driver{}, nil, err
		}

		driver := montecarlo.Driver{
			Params:     cfg.Simulation.Params(),
			Trials:     cfg.MonteCarlo.Trials,
			Seed:       cfg.Simulation.Seed,
			Workers:    cfg.MonteCarlo.Workers,
			LowerBound: cfg.MonteCarlo.LowerBound,
			UpperBound: cfg.MonteCarlo.UpperBound,
		}

		jnl, err := journalFromConfig(cfg.Journal)
		if err != nil {
			return montecarlo.Driver{}, nil, err
		}
		return driver, jnl, nil
	}

	driver := montecarlo.Driver{
		Params: gbm.Params{
			InitialPrice:       mcPrice,
			Mu:                 mcReturn,
			Sigma:              mcVol,
			HorizonYears:       mcYears,
			TradingDaysPerYear: mcDays,
		},
		Trials:     mcTrials,
		Seed:       mcSeed,
		Workers:    mcWorkers,
		LowerBound: mcLower,
		UpperBound: mcUpper,
	}

	jnl, err := journalFromFlags()
	if err != nil {
		return montecarlo.Driver{}, nil, err
	}
	return driver, jnl, nil
}

func journalFromConfig(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	case "csv":
		return journal.NewCSV(jc.RunsFile, jc.TrialsFile)
	default:
		return nil, nil
	}
}

func journalFromFlags() (journal.Journal, error) {
	switch {
	case mcDBPath != "":
		return journal.NewSQLite(mcDBPath)
	case mcRunsCSV != "" && mcTrialsCSV != "":
		return journal.NewCSV(mcRunsCSV, mcTrialsCSV)
	case mcRunsCSV != "" || mcTrialsCSV != "":
		return nil, fmt.Errorf("CSV journaling needs both --runs-csv and --trials-csv")
	default:
		return nil, nil
	}
}

func journalRun(jnl journal.Journal, runID string, d montecarlo.Driver, s montecarlo.Summary) error {
	run := journal.RunRecord{
		RunID:            runID,
		CreatedAt:        time.Now().UTC(),
		InitialPrice:     d.Params.InitialPrice,
		AnnualReturn:     d.Params.Mu,
		AnnualVolatility: d.Params.Sigma,
		HorizonYears:     d.Params.HorizonYears,
		TradingDays:      d.Params.TradingDaysPerYear,
		Trials:           d.Trials,
		Seed:             d.Seed,

		MeanFinalPrice:    s.MeanFinalPrice,
		LowerPercentile:   s.LowerPercentile,
		UpperPercentile:   s.UpperPercentile,
		ProbabilityOfLoss: s.ProbabilityOfLoss,
	}
	if err := jnl.RecordRun(run); err != nil {
		return err
	}

	trials := make([]journal.TrialRecord, len(s.Records))
	for i, r := range s.Records {
		trials[i] = journal.TrialRecord{
			RunID:       runID,
			TrialIndex:  i,
			FinalPrice:  r.FinalPrice,
			CAGR:        r.CAGR,
			MaxDrawdown: r.MaxDrawdown,
			Loss:        r.Loss,
		}
	}
	return jnl.RecordTrials(trials)
}
