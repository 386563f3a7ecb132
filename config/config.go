package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/gbmsim/gbm"
	"github.com/rustyeddy/gbmsim/montecarlo"
	"gopkg.in/yaml.v3"
)

// Config represents a complete simulation run configuration
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	MonteCarlo MonteCarloConfig `json:"monte_carlo" yaml:"monte_carlo"`
	Journal    JournalConfig    `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// SimulationConfig contains the GBM model parameters
type SimulationConfig struct {
	InitialPrice       float64 `json:"initial_price" yaml:"initial_price"`
	AnnualReturn       float64 `json:"annual_return" yaml:"annual_return"`
	AnnualVolatility   float64 `json:"annual_volatility" yaml:"annual_volatility"`
	HorizonYears       int     `json:"horizon_years" yaml:"horizon_years"`
	TradingDaysPerYear int     `json:"trading_days_per_year" yaml:"trading_days_per_year"`
	Seed               int64   `json:"seed" yaml:"seed"`
}

// MonteCarloConfig contains batch parameters
type MonteCarloConfig struct {
	Trials     int     `json:"trials" yaml:"trials"`
	Workers    int     `json:"workers,omitempty" yaml:"workers,omitempty"`
	LowerBound float64 `json:"lower_bound" yaml:"lower_bound"` // percentile, percent
	UpperBound float64 `json:"upper_bound" yaml:"upper_bound"` // percentile, percent
}

// JournalConfig contains optional run-journaling parameters
type JournalConfig struct {
	Type       string `json:"type,omitempty" yaml:"type,omitempty"` // "", "csv" or "sqlite"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	TrialsFile string `json:"trials_file,omitempty" yaml:"trials_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Params converts the simulation section into engine parameters.
func (s SimulationConfig) Params() gbm.Params {
	return gbm.Params{
		InitialPrice:       s.InitialPrice,
		Mu:                 s.AnnualReturn,
		Sigma:              s.AnnualVolatility,
		HorizonYears:       s.HorizonYears,
		TradingDaysPerYear: s.TradingDaysPerYear,
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Simulation.Params().Validate(); err != nil {
		return err
	}
	if c.MonteCarlo.Trials < 1 {
		return fmt.Errorf("monte_carlo.trials must be >= 1")
	}
	if c.MonteCarlo.Workers < 0 {
		return fmt.Errorf("monte_carlo.workers must be >= 0")
	}
	lower, upper := c.MonteCarlo.LowerBound, c.MonteCarlo.UpperBound
	if !(lower == 0 && upper == 0) {
		if lower < 0 || upper > 100 || lower >= upper {
			return fmt.Errorf("monte_carlo percentile bounds must satisfy 0 <= lower < upper <= 100")
		}
	}
	switch c.Journal.Type {
	case "":
		// journaling disabled
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.TrialsFile == "" {
			return fmt.Errorf("journal runs_file and trials_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			InitialPrice:       100,
			AnnualReturn:       0.08,
			AnnualVolatility:   0.20,
			HorizonYears:       30,
			TradingDaysPerYear: gbm.DefaultTradingDays,
			Seed:               42,
		},
		MonteCarlo: MonteCarloConfig{
			Trials:     1000,
			LowerBound: montecarlo.DefaultLowerBound,
			UpperBound: montecarlo.DefaultUpperBound,
		},
	}
}
