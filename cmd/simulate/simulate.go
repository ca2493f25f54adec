// Package simulate handles the projection command
package simulate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudat/cf-simu/cmd/common"
	"github.com/sudat/cf-simu/cmd/root"
	"github.com/sudat/cf-simu/internal/export"
)

var (
	years     int
	startYear int
	monthly   int
)

// Cmd represents the simulate command
var Cmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project yearly cash flow and balances",
	Long: `Project income, expense, asset and debt totals year by year using
each item's active plan, and optionally export the table as CSV.`,
	Run: simulateFunc,
}

func init() {
	Cmd.Flags().IntVarP(&years, "years", "y", 0, "Projection horizon in years (default from config)")
	Cmd.Flags().IntVar(&startYear, "start-year", 0, "First projected year (default from config)")
	Cmd.Flags().IntVar(&monthly, "monthly", 0, "Also print the monthly breakdown for the given year")
}

func simulateFunc(cmd *cobra.Command, args []string) {
	if years == 0 {
		years = root.Cfg.Simulation.Period
	}
	if startYear == 0 {
		startYear = root.Cfg.Simulation.StartYear
	}

	st, _ := common.LoadStore(root.SharedFlags.StateFile, root.Log)
	results := st.CalculateSimulation(years, startYear)

	fmt.Printf("%-6s %14s %14s %14s %14s %14s %14s\n",
		"year", "income", "expense", "net income", "assets", "debts", "net assets")
	for _, r := range results {
		fmt.Printf("%-6d %14d %14d %14d %14d %14d %14d\n",
			r.Year, r.Income, r.Expense, r.NetIncome, r.Assets, r.Debts, r.NetAssets)
	}

	if monthly != 0 {
		fmt.Printf("\nmonthly breakdown %d\n", monthly)
		fmt.Printf("%-6s %14s %14s %14s\n", "month", "income", "expense", "net")
		for _, m := range st.CalculateMonthlyData(monthly) {
			fmt.Printf("%-6d %14d %14d %14d\n", m.Month, m.Income, m.Expense, m.Net)
		}
	}

	if root.SharedFlags.Output != "" {
		if err := export.WriteSimulationToCSV(results, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
		root.Log.Infof("Simulation exported to %s", root.SharedFlags.Output)
	}
}
