package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/checker"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/history"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/report"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region command

func newEvaluateCmd() *cobra.Command {
	var referencePath string

	cmd := &cobra.Command{
		Use:   "evaluate <record.json>",
		Short: "Evaluate one analysis record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			record, err := readRecord(args[0])
			if err != nil {
				return err
			}

			var reference map[string]result.Value
			if referencePath != "" {
				reference, err = readReference(referencePath)
				if err != nil {
					return err
				}
			}

			evalConfig := cfg.EvaluatorConfig()
			if cfg.Strict {
				evalConfig.Thresholds = checker.StrictThresholds()
			}

			rep := checker.NewWithConfig(evalConfig).Check(record, reference)
			fmt.Print(report.Render(rep.Metrics, record, evalConfig.Thresholds))
			fmt.Printf("\nRecommendation: %s\n", rep.Recommendation)

			if cfg.HistoryDB != "" {
				if err := appendHistory(cfg.HistoryDB, record, rep); err != nil {
					return err
				}
			}

			if !rep.Metrics.OverallPass {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&referencePath, "reference", "", "reference values file (JSON)")
	return cmd
}

// #endregion command

// #region input

func readRecord(path string) (evaluator.AnalysisRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return evaluator.AnalysisRecord{}, fmt.Errorf("reading record %s: %w", path, err)
	}
	var record evaluator.AnalysisRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return evaluator.AnalysisRecord{}, fmt.Errorf("parsing record %s: %w", path, err)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	return record, nil
}

func readReference(path string) (map[string]result.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference %s: %w", path, err)
	}
	var reference map[string]result.Value
	if err := json.Unmarshal(data, &reference); err != nil {
		return nil, fmt.Errorf("parsing reference %s: %w", path, err)
	}
	return reference, nil
}

// #endregion input

// #region history

func appendHistory(dbPath string, record evaluator.AnalysisRecord, rep checker.QualityReport) error {
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(history.Entry{
		ID:             rep.CheckID,
		QueryText:      record.QueryText,
		Metrics:        rep.Metrics,
		Recommendation: rep.Recommendation,
	})
	return err
}

// #endregion history
