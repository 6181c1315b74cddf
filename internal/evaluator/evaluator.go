package evaluator

// #region imports
import (
	"math"
	"strings"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region constants

const (
	// matchTolerance is the absolute tolerance for numeric reference comparison.
	matchTolerance = 0.01
	// oversizedLimit is the magnitude above which a numeric result is
	// considered implausibly large in the consistency check.
	oversizedLimit = 10_000_000
)

var errorMarkers = []string{"error", "exception", "failed", "null"}

// #endregion constants

// #region evaluator

// Evaluator computes the four quality rates and the pass/fail verdict for
// an analysis record. It holds no mutable state; a single instance is safe
// for concurrent use as long as its config is not changed after New.
type Evaluator struct {
	config Config
}

// New creates an evaluator with the given configuration.
func New(config Config) *Evaluator {
	return &Evaluator{config: config}
}

// Thresholds returns the bounds the verdict is judged against.
func (e *Evaluator) Thresholds() Thresholds {
	return e.config.Thresholds
}

// Evaluate runs the four independent rate computations and combines them.
// reference may be nil, in which case accuracy falls back to the
// consistency score. Missing or empty inputs never raise; each
// sub-computation has a defined default for the empty case.
func (e *Evaluator) Evaluate(record AnalysisRecord, reference map[string]result.Value) EvaluationMetrics {
	semantic := e.semanticErrorRate(record)
	execution := e.executionSuccessRate(record)
	empty := e.emptyResultRate(record)
	accuracy := e.accuracyRate(record, reference)

	return EvaluationMetrics{
		SemanticErrorRate:    semantic,
		ExecutionSuccessRate: execution,
		EmptyResultRate:      empty,
		AccuracyRate:         accuracy,
		OverallPass:          e.overallPass(semantic, execution, empty, accuracy),
	}
}

// #endregion evaluator

// #region semantic-error-rate

// semanticErrorRate is the share of executed queries flagged by the
// pattern catalog or the query/result mismatch cross-check.
func (e *Evaluator) semanticErrorRate(record AnalysisRecord) float64 {
	if len(record.ExecutedQueries) == 0 {
		return 0.0 // no queries to be wrong
	}

	flagged := 0
	for _, query := range record.ExecutedQueries {
		if matchesCatalog(query) || resultMismatch(query, record) {
			flagged++
		}
	}
	return clamp01(float64(flagged) / float64(len(record.ExecutedQueries)))
}

// resultMismatch cross-checks a query against the record's own results:
// a counting query must not coexist with negative numeric results, and a
// percentage question must not coexist with numeric results above 100.
func resultMismatch(query string, record AnalysisRecord) bool {
	if strings.Contains(strings.ToLower(query), "count") {
		for _, v := range record.Results {
			if n, ok := v.AsNumber(); ok && n < 0 {
				return true
			}
		}
	}

	if containsAny(strings.ToLower(record.QueryText), rateKeywords) {
		for _, v := range record.Results {
			if n, ok := v.AsNumber(); ok && n > 100 {
				return true
			}
		}
	}

	return false
}

// #endregion semantic-error-rate

// #region execution-success-rate

// executionSuccessRate counts log entries with a success status or no
// error indicator. No logs at all means the caller attests success.
func (e *Evaluator) executionSuccessRate(record AnalysisRecord) float64 {
	if len(record.ExecutionLogs) == 0 {
		return 1.0
	}

	successes := 0
	for _, entry := range record.ExecutionLogs {
		if entry.Status == "success" || entry.Err == "" {
			successes++
		}
	}
	return clamp01(float64(successes) / float64(len(record.ExecutionLogs)))
}

// #endregion execution-success-rate

// #region empty-result-rate

// emptyResultRate counts result fields that are absent, vacuous,
// non-finite, or carry an embedded error marker. An entirely empty
// results mapping is maximal emptiness.
func (e *Evaluator) emptyResultRate(record AnalysisRecord) float64 {
	if len(record.Results) == 0 {
		return 1.0
	}

	empty := 0
	for _, v := range record.Results {
		if isEmptyOrInvalid(v) {
			empty++
		}
	}
	return clamp01(float64(empty) / float64(len(record.Results)))
}

func isEmptyOrInvalid(v result.Value) bool {
	switch v.Kind() {
	case result.KindNull:
		return true
	case result.KindSequence, result.KindMapping:
		return v.Len() == 0
	case result.KindText:
		trimmed := strings.TrimSpace(v.Text())
		if trimmed == "" {
			return true
		}
		return containsAny(strings.ToLower(v.Text()), errorMarkers)
	case result.KindNumber:
		n := v.Number()
		return math.IsNaN(n) || math.IsInf(n, 0)
	default:
		// Opaque values are excluded from the invalidity rules.
		return false
	}
}

// #endregion empty-result-rate

// #region accuracy-rate

// accuracyRate compares results against the reference where keys overlap,
// or falls back to the consistency score when no reference is supplied.
func (e *Evaluator) accuracyRate(record AnalysisRecord, reference map[string]result.Value) float64 {
	if reference == nil {
		return e.consistencyScore(record)
	}

	matches := 0
	compared := 0
	for key, computed := range record.Results {
		expected, ok := reference[key]
		if !ok {
			continue
		}
		compared++
		if valuesMatch(computed, expected) {
			matches++
		}
	}
	if compared == 0 {
		return 1.0 // nothing to contradict
	}
	return clamp01(float64(matches) / float64(compared))
}

// valuesMatch is the type-tolerant equality used against references:
// numbers within an absolute tolerance, strings case-insensitively after
// trimming, collections structurally, mismatched kinds never equal.
func valuesMatch(computed, expected result.Value) bool {
	if computed.Kind() == result.KindNumber && expected.Kind() == result.KindNumber {
		return math.Abs(computed.Number()-expected.Number()) <= matchTolerance
	}
	if computed.Kind() != expected.Kind() {
		return false
	}
	if computed.Kind() == result.KindText {
		return strings.EqualFold(strings.TrimSpace(computed.Text()), strings.TrimSpace(expected.Text()))
	}
	return computed.Equal(expected)
}

// #endregion accuracy-rate

// #region consistency-score

// consistencyScore is the no-reference accuracy fallback: start at 1.0
// and subtract a penalty per implausible field, flooring at 0.0. Penalties
// stack without a cap, so the raw score can go negative before the floor.
func (e *Evaluator) consistencyScore(record AnalysisRecord) float64 {
	score := 1.0
	p := e.config.Penalties

	serialized := strings.ToLower(result.Mapping(record.Results).String())
	countContext := strings.Contains(serialized, "count")

	for _, v := range record.Results {
		n, ok := v.AsNumber()
		if !ok {
			continue
		}
		if n < 0 && countContext {
			score -= p.NegativeCount
		}
		if n > oversizedLimit {
			score -= p.OversizedValue
		}
	}

	for key, v := range record.Results {
		if !containsAny(strings.ToLower(key), rateFieldKeywords) {
			continue
		}
		if n, ok := v.AsNumber(); ok && (n < 0 || n > 100) {
			score -= p.RateOutOfRange
		}
	}

	return math.Max(0.0, score)
}

// #endregion consistency-score

// #region verdict

// overallPass is a conjunctive gate: all four rates must satisfy their
// bounds. A single failing dimension fails the whole evaluation.
func (e *Evaluator) overallPass(semantic, execution, empty, accuracy float64) bool {
	t := e.config.Thresholds
	return semantic <= t.SemanticError &&
		execution >= t.ExecutionSuccess &&
		empty <= t.EmptyResult &&
		accuracy >= t.Accuracy
}

// #endregion verdict

// #region helpers

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// #endregion helpers
