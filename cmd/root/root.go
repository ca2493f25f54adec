// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sudat/cf-simu/internal/config"
	"github.com/sudat/cf-simu/internal/export"
	"github.com/sudat/cf-simu/internal/integrity"
	"github.com/sudat/cf-simu/internal/logging"
	"github.com/sudat/cf-simu/internal/planstate"
	"github.com/sudat/cf-simu/internal/simulation"
	"github.com/sudat/cf-simu/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	StateFile string
	Output    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cf-simu",
		Short: "A household cash-flow planner with per-item plan variants.",
		Long: `cf-simu manages income, expense, asset and debt items, each with
named parameter plans, and projects yearly cash flow and balances
over a configurable horizon.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cf-simu!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Set the configured logger for all core packages
			adapted := logging.NewLogrusAdapterFromLogger(Log)
			planstate.SetLogger(adapted)
			integrity.SetLogger(adapted)
			simulation.SetLogger(adapted)
			store.SetLogger(adapted)
			export.SetLogger(adapted)

			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				export.SetDelimiter([]rune(delim)[0])
			} else if Cfg.CSV.Delimiter != "" {
				export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}

			if SharedFlags.StateFile == "" {
				SharedFlags.StateFile = Cfg.State.File
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.StateFile, "state", "s", "", "State snapshot file (default from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
