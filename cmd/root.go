package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "finance-engine",
	Short: "Personal finance calculators over HTTP and the command line",
	Long: `finance-engine computes loan installments, deposit and investment maturities,
retirement corpus, home-loan eligibility, credit-card balances, taxable income,
budget splits and net worth.

Run "finance-engine serve" for the JSON API or "finance-engine calc" for a
single calculation.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
}
