// Package gatekeeper runs an analysis function until its output clears
// the quality bounds or attempts run out. The evaluator itself is
// one-shot and stateless; the retry loop belongs to the caller, and this
// package is that caller-side helper.
package gatekeeper

// #region imports
import (
	"context"
	"fmt"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region constants

const defaultMaxAttempts = 3

// #endregion

// #region types

// AnalysisFunc produces one analysis attempt. attempt is 1-based. The
// function is expected to run queries against the data store; the gate
// never touches a live source itself.
type AnalysisFunc func(ctx context.Context, attempt int) (evaluator.AnalysisRecord, error)

// Attempt records one analysis run and its evaluation.
type Attempt struct {
	Number  int
	Record  evaluator.AnalysisRecord
	Metrics evaluator.EvaluationMetrics
}

// Outcome is the gate's final result: the full attempt trail and whether
// any attempt passed.
type Outcome struct {
	Passed   bool
	Attempts []Attempt
	Final    evaluator.EvaluationMetrics
}

// #endregion types

// #region gate

// Gate retries an analysis until it passes evaluation.
type Gate struct {
	eval        *evaluator.Evaluator
	maxAttempts int
}

// New creates a gate. maxAttempts <= 0 selects the default of 3.
func New(config evaluator.Config, maxAttempts int) *Gate {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Gate{eval: evaluator.New(config), maxAttempts: maxAttempts}
}

// Run invokes fn up to the attempt limit, evaluating each record against
// the optional reference, and stops at the first passing attempt. An
// error from fn aborts the loop; analysis failures are the caller's to
// handle, not a quality signal.
func (g *Gate) Run(ctx context.Context, fn AnalysisFunc, reference map[string]result.Value) (Outcome, error) {
	var outcome Outcome

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		record, err := fn(ctx, attempt)
		if err != nil {
			return outcome, fmt.Errorf("analysis attempt %d: %w", attempt, err)
		}

		metrics := g.eval.Evaluate(record, reference)
		outcome.Attempts = append(outcome.Attempts, Attempt{
			Number:  attempt,
			Record:  record,
			Metrics: metrics,
		})
		outcome.Final = metrics

		if metrics.OverallPass {
			outcome.Passed = true
			return outcome, nil
		}
	}

	return outcome, nil
}

// #endregion gate
