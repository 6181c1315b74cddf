package main

// #region imports
import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/history"
)

// #endregion

// #region command

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent evaluation outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.HistoryDB == "" {
				return fmt.Errorf("no history_db configured in %s", cfgPath)
			}

			store, err := history.Open(cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("no evaluations recorded")
				return nil
			}

			for _, e := range entries {
				verdict := "FAIL"
				if e.Metrics.OverallPass {
					verdict = "PASS"
				}
				fmt.Printf("%s  %s  %q\n", e.CreatedAt.Format("2006-01-02 15:04:05"), verdict, e.QueryText)
				fmt.Printf("    semantic=%.2f success=%.2f empty=%.2f accuracy=%.2f\n",
					e.Metrics.SemanticErrorRate, e.Metrics.ExecutionSuccessRate,
					e.Metrics.EmptyResultRate, e.Metrics.AccuracyRate)
				if e.Recommendation != "" {
					fmt.Printf("    %s\n", e.Recommendation)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of entries to show")
	return cmd
}

// #endregion command
