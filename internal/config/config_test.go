package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evalctl.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Thresholds.SemanticError != 0.1 || cfg.Thresholds.Accuracy != 0.9 {
		t.Fatalf("unexpected default thresholds: %+v", cfg.Thresholds)
	}
	if cfg.Penalties.RateOutOfRange != 0.3 {
		t.Fatalf("unexpected default penalties: %+v", cfg.Penalties)
	}
	if cfg.Strict || cfg.HistoryDB != "" {
		t.Fatalf("expected empty optional fields, got %+v", cfg)
	}
}

func TestLoadOverridesPartially(t *testing.T) {
	path := writeConfig(t, `
thresholds:
  semantic_error: 0.05
  execution_success: 0.95
  empty_result: 0.1
  accuracy: 0.95
strict: true
history_db: runs.db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Thresholds.SemanticError != 0.05 {
		t.Fatalf("expected overridden threshold, got %+v", cfg.Thresholds)
	}
	if !cfg.Strict || cfg.HistoryDB != "runs.db" {
		t.Fatalf("expected strict mode and history path, got %+v", cfg)
	}
	// Penalties were not mentioned: defaults survive.
	if cfg.Penalties.NegativeCount != 0.2 {
		t.Fatalf("expected default penalties, got %+v", cfg.Penalties)
	}
}

func TestLoadRejectsOutOfRangeThreshold(t *testing.T) {
	path := writeConfig(t, `
thresholds:
  semantic_error: 1.5
  execution_success: 0.8
  empty_result: 0.2
  accuracy: 0.9
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "semantic_error") {
		t.Fatalf("expected threshold validation error, got %v", err)
	}
}

func TestLoadRejectsNegativePenalty(t *testing.T) {
	path := writeConfig(t, `
penalties:
  negative_count: -0.2
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "negative_count") {
		t.Fatalf("expected penalty validation error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
