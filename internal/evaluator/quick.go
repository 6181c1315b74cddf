package evaluator

// #region imports
import (
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region threshold-keys

// Threshold override keys accepted at the Quick boundary.
const (
	ThresholdKeySemanticError    = "semantic_error"
	ThresholdKeyExecutionSuccess = "execution_success"
	ThresholdKeyEmptyResult      = "empty_result"
	ThresholdKeyAccuracy         = "accuracy"
)

var thresholdKeys = []string{
	ThresholdKeySemanticError,
	ThresholdKeyExecutionSuccess,
	ThresholdKeyEmptyResult,
	ThresholdKeyAccuracy,
}

// #endregion threshold-keys

// #region quick-input

// QuickInput is the loosely-typed form of one evaluation request, as a
// caller that just ran an analysis would hold it. Results and Reference
// values are ingested through the tagged-variant boundary.
type QuickInput struct {
	QueryText       string
	ExecutedQueries []string
	Results         map[string]any
	ExecutionLogs   []ExecutionLog
	Reference       map[string]any
	// Thresholds overrides all four bounds at once. Nil means defaults;
	// a supplied map must contain exactly the four known keys.
	Thresholds map[string]float64
}

// #endregion quick-input

// #region quick

// Quick is the one-call entry point: builds the record, constructs an
// evaluator, and returns the metrics. The only error surface is a
// contract violation in the threshold override.
func Quick(in QuickInput) (EvaluationMetrics, error) {
	thresholds, err := thresholdsFromOverride(in.Thresholds)
	if err != nil {
		return EvaluationMetrics{}, err
	}

	record := NewRecord(
		in.QueryText,
		in.ExecutedQueries,
		result.MapFromAny(in.Results),
		in.ExecutionLogs,
	)

	eval := New(Config{
		Thresholds: thresholds,
		Penalties:  DefaultConsistencyPenalties(),
	})
	return eval.Evaluate(record, result.MapFromAny(in.Reference)), nil
}

// thresholdsFromOverride validates an all-or-nothing override map. There
// is no per-field override: a partial or misspelled map fails fast so
// "no override supplied" stays distinct from "malformed override".
func thresholdsFromOverride(override map[string]float64) (Thresholds, error) {
	if override == nil {
		return DefaultThresholds(), nil
	}

	for key := range override {
		known := false
		for _, k := range thresholdKeys {
			if key == k {
				known = true
				break
			}
		}
		if !known {
			return Thresholds{}, &InvalidInputError{Field: "thresholds", Reason: "unknown key " + key}
		}
	}
	for _, k := range thresholdKeys {
		if _, ok := override[k]; !ok {
			return Thresholds{}, &InvalidInputError{Field: "thresholds", Reason: "missing key " + k}
		}
	}

	return Thresholds{
		SemanticError:    override[ThresholdKeySemanticError],
		ExecutionSuccess: override[ThresholdKeyExecutionSuccess],
		EmptyResult:      override[ThresholdKeyEmptyResult],
		Accuracy:         override[ThresholdKeyAccuracy],
	}, nil
}

// #endregion quick
