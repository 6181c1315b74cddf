// Package report renders human-readable evaluation summaries. Pure
// formatting over the metrics: it never influences the verdict.
package report

// #region imports
import (
	"fmt"
	"sort"
	"strings"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
)

// #endregion

// #region render

// Render produces a markdown summary: pass/fail badge, the four rates
// against their thresholds with per-row marks, and the result fields.
func Render(metrics evaluator.EvaluationMetrics, record evaluator.AnalysisRecord, thresholds evaluator.Thresholds) string {
	var b strings.Builder

	badge := "FAIL"
	if metrics.OverallPass {
		badge = "PASS"
	}

	b.WriteString("# Analysis Evaluation\n\n")
	fmt.Fprintf(&b, "## Overall: %s\n\n", badge)

	if record.QueryText != "" {
		b.WriteString("### Question\n```\n")
		b.WriteString(record.QueryText)
		b.WriteString("\n```\n\n")
	}

	b.WriteString("### Metrics\n")
	b.WriteString("| metric | value | bound | status |\n")
	b.WriteString("|--------|-------|-------|--------|\n")
	writeRow(&b, "semantic_error_rate", metrics.SemanticErrorRate, "<=", thresholds.SemanticError, metrics.SemanticErrorRate <= thresholds.SemanticError)
	writeRow(&b, "execution_success_rate", metrics.ExecutionSuccessRate, ">=", thresholds.ExecutionSuccess, metrics.ExecutionSuccessRate >= thresholds.ExecutionSuccess)
	writeRow(&b, "empty_result_rate", metrics.EmptyResultRate, "<=", thresholds.EmptyResult, metrics.EmptyResultRate <= thresholds.EmptyResult)
	writeRow(&b, "accuracy_rate", metrics.AccuracyRate, ">=", thresholds.Accuracy, metrics.AccuracyRate >= thresholds.Accuracy)
	b.WriteString("\n")

	if len(record.Results) > 0 {
		b.WriteString("### Results\n")
		keys := make([]string, 0, len(record.Results))
		for k := range record.Results {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- **%s**: %s\n", k, record.Results[k])
		}
		b.WriteString("\n")
	}

	if !record.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Evaluated at: %s\n", record.Timestamp.Format("2006-01-02 15:04:05 MST"))
	}

	return b.String()
}

func writeRow(b *strings.Builder, name string, value float64, op string, bound float64, ok bool) {
	mark := "fail"
	if ok {
		mark = "ok"
	}
	fmt.Fprintf(b, "| %s | %.2f%% | %s%.2f%% | %s |\n", name, value*100, op, bound*100, mark)
}

// #endregion render
