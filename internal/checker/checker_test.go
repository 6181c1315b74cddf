package checker

import (
	"strings"
	"testing"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

func healthyRecord() evaluator.AnalysisRecord {
	return evaluator.NewRecord(
		"daily active users",
		[]string{"db.users.find({'last_active': {'$gte': 'today'}})"},
		result.MapFromAny(map[string]any{"daily_active_users": 1847}),
		[]evaluator.ExecutionLog{{Status: "success"}},
	)
}

func TestCheckHealthyAnalysisPasses(t *testing.T) {
	rep := New(false).Check(healthyRecord(), nil)

	if rep.Status != "PASS" {
		t.Fatalf("expected PASS, got %s (%+v)", rep.Status, rep.Metrics)
	}
	if rep.Confidence != "high" {
		t.Fatalf("expected high confidence, got %s", rep.Confidence)
	}
	if rep.CheckID == "" {
		t.Fatal("expected non-empty check ID")
	}
	if rep.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
	if !strings.Contains(rep.Recommendation, "trusted") {
		t.Fatalf("expected all-clear recommendation, got %q", rep.Recommendation)
	}
}

func TestCheckRecommendationNamesFailingDimensions(t *testing.T) {
	rec := evaluator.NewRecord(
		"count active users",
		[]string{"db.users.find({'user_id': {'$ne': '$user_id'}})"},
		result.MapFromAny(map[string]any{"active_users": nil}),
		[]evaluator.ExecutionLog{{Status: "error", Err: "field not found"}},
	)
	rep := New(false).Check(rec, nil)

	if rep.Status != "FAIL" {
		t.Fatalf("expected FAIL, got %s", rep.Status)
	}
	for _, want := range []string{
		"review query logic",          // semantic errors
		"check execution environment", // failed log
		"verify data exists",          // null result
	} {
		if !strings.Contains(rep.Recommendation, want) {
			t.Fatalf("recommendation missing %q: %q", want, rep.Recommendation)
		}
	}
}

func TestStrictModeTightensBounds(t *testing.T) {
	// One failure among ten logs: 0.9 success passes default 0.8 but
	// fails strict 0.95.
	logs := make([]evaluator.ExecutionLog, 10)
	for i := range logs {
		logs[i] = evaluator.ExecutionLog{Status: "success"}
	}
	logs[0] = evaluator.ExecutionLog{Status: "error", Err: "timeout"}

	rec := evaluator.NewRecord(
		"daily active users",
		nil,
		result.MapFromAny(map[string]any{"daily_active_users": 1847}),
		logs,
	)

	if rep := New(false).Check(rec, nil); rep.Status != "PASS" {
		t.Fatalf("expected default-mode PASS, got %s (%+v)", rep.Status, rep.Metrics)
	}
	if rep := New(true).Check(rec, nil); rep.Status != "FAIL" {
		t.Fatalf("expected strict-mode FAIL, got %s (%+v)", rep.Status, rep.Metrics)
	}
}
