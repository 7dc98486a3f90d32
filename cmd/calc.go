package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"finance-engine/calculator"
	"finance-engine/config"
	"finance-engine/repository"
	"finance-engine/service"

	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc <tool> [key=value ...]",
	Short: "Run one calculation and print the JSON result",
	Long: `Run one calculation and print the JSON result.

Arguments use the same names as the HTTP API. Lists are comma separated.

Examples:
  finance-engine calc emi principal=500000 annual_rate_percent=8.5 tenure_months=240
  finance-engine calc net-worth assets=50000,20000 liabilities=15000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available calculators",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, tool := range calculator.Tools() {
			fmt.Fprintln(cmd.OutOrStdout(), tool)
		}
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(toolsCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg, cmd.ErrOrStderr())

	calc, err := calculator.NewInput(calculator.Tool(args[0]))
	if err != nil {
		return err
	}
	values, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	if err := calculator.Decode(calc, values); err != nil {
		return err
	}

	tools := service.NewToolService(
		repository.NewMemoryCache(0, 0),
		repository.NewCalculationRepositoryMemory(1),
		service.Limits{MaxSimulationMonths: cfg.Limits.MaxSimulationMonths},
	)
	result, err := tools.Calculate(cmd.Context(), calc)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

// parseAssignments turns key=value arguments into a map
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", arg)
		}
		values[key] = value
	}
	return values, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
