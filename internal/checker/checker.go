// Package checker wraps the evaluator for callers that want an immediate
// quality verdict with a recommendation, optionally under strict bounds.
package checker

// #region imports
import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region strict-thresholds

// StrictThresholds tightens every bound for analyses that feed
// downstream decisions.
func StrictThresholds() evaluator.Thresholds {
	return evaluator.Thresholds{
		SemanticError:    0.05,
		ExecutionSuccess: 0.95,
		EmptyResult:      0.1,
		Accuracy:         0.95,
	}
}

// #endregion strict-thresholds

// #region quality-report

// QualityReport is the checker's verdict for one analysis.
type QualityReport struct {
	CheckID        string
	Timestamp      time.Time
	Query          string
	Status         string // "PASS" | "FAIL"
	Confidence     string // "high" | "low"
	Metrics        evaluator.EvaluationMetrics
	Results        map[string]result.Value
	Recommendation string
}

// #endregion quality-report

// #region checker

// Checker runs evaluations under a fixed threshold profile.
type Checker struct {
	eval *evaluator.Evaluator
}

// New creates a checker. Strict mode applies the tightened bounds.
func New(strict bool) *Checker {
	config := evaluator.DefaultConfig()
	if strict {
		config.Thresholds = StrictThresholds()
	}
	return NewWithConfig(config)
}

// NewWithConfig creates a checker with explicit evaluator settings.
func NewWithConfig(config evaluator.Config) *Checker {
	return &Checker{eval: evaluator.New(config)}
}

// Check evaluates the record and packages the verdict with a
// recommendation. reference may be nil.
func (c *Checker) Check(record evaluator.AnalysisRecord, reference map[string]result.Value) QualityReport {
	metrics := c.eval.Evaluate(record, reference)

	status := "FAIL"
	confidence := "low"
	if metrics.OverallPass {
		status = "PASS"
		confidence = "high"
	}

	return QualityReport{
		CheckID:        uuid.New().String(),
		Timestamp:      time.Now().UTC(),
		Query:          record.QueryText,
		Status:         status,
		Confidence:     confidence,
		Metrics:        metrics,
		Results:        record.Results,
		Recommendation: recommendation(metrics, c.eval.Thresholds()),
	}
}

// #endregion checker

// #region recommendation

// recommendation names the failing dimensions, or gives an all-clear.
func recommendation(m evaluator.EvaluationMetrics, t evaluator.Thresholds) string {
	if m.OverallPass {
		return "analysis results can be trusted"
	}

	var issues []string
	if m.SemanticErrorRate > t.SemanticError {
		issues = append(issues, "review query logic")
	}
	if m.ExecutionSuccessRate < t.ExecutionSuccess {
		issues = append(issues, "check execution environment")
	}
	if m.EmptyResultRate > t.EmptyResult {
		issues = append(issues, "verify data exists")
	}
	if m.AccuracyRate < t.Accuracy {
		issues = append(issues, "validate calculation logic")
	}
	return "needs review: " + strings.Join(issues, ", ")
}

// #endregion recommendation
