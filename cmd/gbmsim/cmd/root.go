package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gbmsim",
	Short: "Long-horizon asset price simulation under geometric Brownian motion",
	Long: `Gbmsim simulates asset-price evolution under geometric Brownian motion
and derives risk/return metrics from the simulated paths.

It provides tools for:
  - Generating single price trajectories from model parameters
  - Computing path statistics: CAGR, max drawdown, streaks, daily distribution
  - Running Monte Carlo batches with percentile intervals and loss probability
  - Journaling run results to SQLite or CSV for later inspection`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
