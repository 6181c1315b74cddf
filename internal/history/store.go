// Package history is an audit trail of evaluation outcomes for the CLI.
// The evaluator core stays stateless; only the caller side records runs.
package history

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	evaluation_id           TEXT PRIMARY KEY,
	query_text              TEXT NOT NULL,
	semantic_error_rate     REAL NOT NULL,
	execution_success_rate  REAL NOT NULL,
	empty_result_rate       REAL NOT NULL,
	accuracy_rate           REAL NOT NULL,
	passed                  INTEGER NOT NULL,
	recommendation          TEXT,
	created_at              TEXT NOT NULL
);
`

// #endregion schema

// #region entry

// Entry is one recorded evaluation outcome.
type Entry struct {
	ID             string
	QueryText      string
	Metrics        evaluator.EvaluationMetrics
	Recommendation string
	CreatedAt      time.Time
}

// #endregion entry

// #region store

// Store keeps evaluation outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region record

// Record inserts an evaluation outcome, assigning an ID and timestamp
// when unset, and returns the stored entry.
func (s *Store) Record(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO evaluations (evaluation_id, query_text, semantic_error_rate, execution_success_rate,
		 empty_result_rate, accuracy_rate, passed, recommendation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.QueryText,
		e.Metrics.SemanticErrorRate,
		e.Metrics.ExecutionSuccessRate,
		e.Metrics.EmptyResultRate,
		e.Metrics.AccuracyRate,
		boolToInt(e.Metrics.OverallPass),
		nullIfEmpty(e.Recommendation),
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert evaluation: %w", err)
	}
	return e, nil
}

// #endregion record

// #region recent

// Recent returns the latest n evaluations, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT evaluation_id, query_text, semantic_error_rate, execution_success_rate,
		 empty_result_rate, accuracy_rate, passed, recommendation, created_at
		 FROM evaluations ORDER BY created_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var passed int
		var rec sql.NullString
		var createdStr string
		if err := rows.Scan(
			&e.ID, &e.QueryText,
			&e.Metrics.SemanticErrorRate, &e.Metrics.ExecutionSuccessRate,
			&e.Metrics.EmptyResultRate, &e.Metrics.AccuracyRate,
			&passed, &rec, &createdStr,
		); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		e.Metrics.OverallPass = passed != 0
		e.Recommendation = rec.String
		created, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		e.CreatedAt = created
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return entries, nil
}

// #endregion recent

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
