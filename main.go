package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sudat/cf-simu/cmd/item"
	"github.com/sudat/cf-simu/cmd/plan"
	"github.com/sudat/cf-simu/cmd/root"
	"github.com/sudat/cf-simu/cmd/simulate"
	"github.com/sudat/cf-simu/cmd/validate"
	"github.com/sudat/cf-simu/internal/logging"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on all existing and future loggers
	logging.SetAllLogLevels(logLevel)

	// 4. Now that logging is configured, initialize the root command
	root.Init()

	// 5. Add all subcommands
	root.Cmd.AddCommand(item.Cmd)
	root.Cmd.AddCommand(plan.Cmd)
	root.Cmd.AddCommand(simulate.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
