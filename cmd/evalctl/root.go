package main

// #region imports
import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/config"
)

// #endregion

// #region root

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evalctl",
	Short: "Quality gate for MongoDB analysis results",
	Long:  "evalctl scores an analysis run (queries, computed values, execution logs) on four quality rates and issues a pass/fail verdict.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "evalctl.yaml", "config file path")
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newDemoCmd())
}

// #endregion root

// #region config

// loadConfig falls back to defaults when the default config file is absent.
func loadConfig() (config.Config, error) {
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

// #endregion config
