package main

// #region imports
import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/checker"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/gatekeeper"
	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/result"
)

// #endregion

// #region command

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run built-in evaluation scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			runQuickStart()
			runScenarios()
			return runQualityGate(cmd.Context())
		},
	}
}

// #endregion command

// #region quick-start

func runQuickStart() {
	fmt.Println("=== quick start ===")
	metrics, err := evaluator.Quick(evaluator.QuickInput{
		QueryText:       "daily active users",
		ExecutedQueries: []string{"db.users.find({'last_active': {'$gte': 'today'}})"},
		Results:         map[string]any{"daily_active_users": 1847},
	})
	if err != nil {
		fmt.Println("quick evaluate:", err)
		return
	}
	printMetrics(metrics)
}

// #endregion quick-start

// #region scenarios

type demoScenario struct {
	title   string
	query   string
	queries []string
	results map[string]any
	logs    []evaluator.ExecutionLog
}

var demoScenarios = []demoScenario{
	{
		title: "user behavior",
		query: "average session duration and pageviews per user",
		queries: []string{
			"db.sessions.aggregate([{'$group': {'_key': '$user', 'avg_duration': {'$avg': '$duration'}}}])",
			"db.pageviews.aggregate([{'$group': {'_key': '$user', 'total_views': {'$sum': 1}}}])",
		},
		results: map[string]any{
			"avg_session_duration":   185.5,
			"total_users":            1250,
			"avg_pageviews_per_user": 8.3,
		},
	},
	{
		title: "revenue trend",
		query: "monthly revenue and growth over previous month",
		queries: []string{
			"db.orders.aggregate([{'$match': {'date': {'$gte': '2025-01'}}}])",
		},
		results: map[string]any{
			"current_month_revenue":  125000,
			"previous_month_revenue": 108000,
			"growth_value":           15.74,
			"order_total":            890,
		},
	},
	{
		title: "broken analysis",
		query: "count active users",
		queries: []string{
			"db.users.find({'user_id': {'$ne': '$user_id'}})",
			"db.sessions.count({'invalid_field': true})",
		},
		results: map[string]any{
			"active_users": -10,
			"error_result": nil,
			"invalid_rate": 150,
		},
		logs: []evaluator.ExecutionLog{
			{Status: "error", Err: "Field not found"},
			{Status: "success"},
		},
	},
}

func runScenarios() {
	ch := checker.New(false)
	for _, s := range demoScenarios {
		fmt.Printf("\n=== %s ===\n", s.title)
		rec := evaluator.NewRecord(s.query, s.queries, result.MapFromAny(s.results), s.logs)
		rep := ch.Check(rec, nil)
		fmt.Printf("%s: %s\n", rep.Status, rep.Recommendation)
		printMetrics(rep.Metrics)
	}
}

// #endregion scenarios

// #region quality-gate

// simulatedAttempt mimics an analysis pipeline that improves per retry.
func simulatedAttempt(_ context.Context, attempt int) (evaluator.AnalysisRecord, error) {
	switch attempt {
	case 1:
		return evaluator.NewRecord(
			"customer lifetime value",
			[]string{"db.users.find({'id': {'$ne': '$id'}})"},
			result.MapFromAny(map[string]any{"ltv": -100}),
			[]evaluator.ExecutionLog{{Status: "error", Err: "bad query"}},
		), nil
	case 2:
		return evaluator.NewRecord(
			"customer lifetime value",
			[]string{"db.users.aggregate([{'$group': {'_key': null, 'avg_ltv': {'$avg': '$revenue'}}}])"},
			result.MapFromAny(map[string]any{"ltv": nil}),
			[]evaluator.ExecutionLog{{Status: "success"}},
		), nil
	default:
		return evaluator.NewRecord(
			"customer lifetime value",
			[]string{
				"db.users.aggregate([{'$group': {'_key': null, 'avg_ltv': {'$avg': '$lifetime_value'}}}])",
				"db.transactions.aggregate([{'$group': {'_key': '$user', 'total_spent': {'$sum': '$amount'}}}])",
			},
			result.MapFromAny(map[string]any{
				"average_ltv":     245.50,
				"median_ltv":      180.00,
				"total_customers": 5420,
			}),
			[]evaluator.ExecutionLog{
				{Status: "success", Elapsed: 0.15},
				{Status: "success", Elapsed: 0.23},
			},
		), nil
	}
}

func runQualityGate(ctx context.Context) error {
	fmt.Println("\n=== quality gate ===")
	gate := gatekeeper.New(evaluator.DefaultConfig(), 3)
	outcome, err := gate.Run(ctx, simulatedAttempt, nil)
	if err != nil {
		return err
	}
	for _, a := range outcome.Attempts {
		verdict := "FAIL"
		if a.Metrics.OverallPass {
			verdict = "PASS"
		}
		fmt.Printf("attempt %d: %s\n", a.Number, verdict)
	}
	if outcome.Passed {
		fmt.Println("quality gate cleared")
	} else {
		fmt.Println("quality gate not cleared")
	}
	return nil
}

// #endregion quality-gate

// #region print

func printMetrics(m evaluator.EvaluationMetrics) {
	fmt.Printf("  semantic_error_rate:    %.1f%%\n", m.SemanticErrorRate*100)
	fmt.Printf("  execution_success_rate: %.1f%%\n", m.ExecutionSuccessRate*100)
	fmt.Printf("  empty_result_rate:      %.1f%%\n", m.EmptyResultRate*100)
	fmt.Printf("  accuracy_rate:          %.1f%%\n", m.AccuracyRate*100)
}

// #endregion print
