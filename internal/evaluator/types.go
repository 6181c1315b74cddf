package evaluator

// #region imports
import (
	"fmt"
	"time"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region execution-log

// ExecutionLog is one per-attempt record from the caller's query runner.
// An attempt counts as successful when Status is "success" or Err is empty.
type ExecutionLog struct {
	Status     string  `json:"status"`
	Err        string  `json:"error,omitempty"`
	QueryIndex int     `json:"query_index,omitempty"`
	Elapsed    float64 `json:"execution_time,omitempty"` // seconds
}

// #endregion execution-log

// #region analysis-record

// AnalysisRecord bundles everything the caller knows about one analysis:
// the natural-language question, the queries it ran, the computed values,
// and optional per-attempt execution logs.
type AnalysisRecord struct {
	QueryText       string                  `json:"query_text"`
	ExecutedQueries []string                `json:"executed_queries"`
	Results         map[string]result.Value `json:"results"`
	ExecutionLogs   []ExecutionLog          `json:"execution_logs,omitempty"`
	Timestamp       time.Time               `json:"timestamp,omitempty"`
}

// NewRecord builds an AnalysisRecord stamped with the current time.
func NewRecord(queryText string, queries []string, results map[string]result.Value, logs []ExecutionLog) AnalysisRecord {
	return AnalysisRecord{
		QueryText:       queryText,
		ExecutedQueries: queries,
		Results:         results,
		ExecutionLogs:   logs,
		Timestamp:       time.Now().UTC(),
	}
}

// #endregion analysis-record

// #region thresholds

// Thresholds holds the four pass/fail bounds. Error-style rates
// (semantic error, empty result) are maxima; success-style rates
// (execution success, accuracy) are minima.
type Thresholds struct {
	SemanticError    float64 `yaml:"semantic_error"`
	ExecutionSuccess float64 `yaml:"execution_success"`
	EmptyResult      float64 `yaml:"empty_result"`
	Accuracy         float64 `yaml:"accuracy"`
}

// DefaultThresholds returns the standard bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SemanticError:    0.1,
		ExecutionSuccess: 0.8,
		EmptyResult:      0.2,
		Accuracy:         0.9,
	}
}

// #endregion thresholds

// #region penalties

// ConsistencyPenalties are the weights subtracted in the no-reference
// accuracy path. The values are product-chosen constants, not derived.
type ConsistencyPenalties struct {
	NegativeCount  float64 `yaml:"negative_count"`
	OversizedValue float64 `yaml:"oversized_value"`
	RateOutOfRange float64 `yaml:"rate_out_of_range"`
}

// DefaultConsistencyPenalties returns the standard weights.
func DefaultConsistencyPenalties() ConsistencyPenalties {
	return ConsistencyPenalties{
		NegativeCount:  0.2,
		OversizedValue: 0.1,
		RateOutOfRange: 0.3,
	}
}

// #endregion penalties

// #region config

// Config bundles the evaluator's read-only settings.
type Config struct {
	Thresholds Thresholds
	Penalties  ConsistencyPenalties
}

// DefaultConfig returns the standard thresholds and penalty weights.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		Penalties:  DefaultConsistencyPenalties(),
	}
}

// #endregion config

// #region metrics

// EvaluationMetrics is the evaluator's output: four rates in [0, 1] and
// the conjunctive verdict across all threshold comparisons.
type EvaluationMetrics struct {
	SemanticErrorRate    float64 `json:"semantic_error_rate"`
	ExecutionSuccessRate float64 `json:"execution_success_rate"`
	EmptyResultRate      float64 `json:"empty_result_rate"`
	AccuracyRate         float64 `json:"accuracy_rate"`
	OverallPass          bool    `json:"overall_pass"`
}

// #endregion metrics

// #region invalid-input

// InvalidInputError marks a programming-contract violation at the input
// boundary, as opposed to merely missing data (which degrades to defaults).
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// #endregion invalid-input
