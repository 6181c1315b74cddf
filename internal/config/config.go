// Package config loads evalctl's YAML configuration.
package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fantabuulous/mongodb-analysis-evaluator/internal/evaluator"
)

// #endregion

// #region config

// Config is the CLI's file configuration. Omitted fields keep defaults.
type Config struct {
	Thresholds evaluator.Thresholds           `yaml:"thresholds"`
	Penalties  evaluator.ConsistencyPenalties `yaml:"penalties"`
	Strict     bool                           `yaml:"strict"`
	HistoryDB  string                         `yaml:"history_db"`
}

// Default returns the standard configuration with no history database.
func Default() Config {
	return Config{
		Thresholds: evaluator.DefaultThresholds(),
		Penalties:  evaluator.DefaultConsistencyPenalties(),
	}
}

// EvaluatorConfig converts the file config into the evaluator's settings.
func (c Config) EvaluatorConfig() evaluator.Config {
	return evaluator.Config{Thresholds: c.Thresholds, Penalties: c.Penalties}
}

// #endregion config

// #region load

// Load reads and validates a YAML config file. Values missing from the
// file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	bounds := map[string]float64{
		"thresholds.semantic_error":    c.Thresholds.SemanticError,
		"thresholds.execution_success": c.Thresholds.ExecutionSuccess,
		"thresholds.empty_result":      c.Thresholds.EmptyResult,
		"thresholds.accuracy":          c.Thresholds.Accuracy,
	}
	for name, v := range bounds {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}

	weights := map[string]float64{
		"penalties.negative_count":    c.Penalties.NegativeCount,
		"penalties.oversized_value":   c.Penalties.OversizedValue,
		"penalties.rate_out_of_range": c.Penalties.RateOutOfRange,
	}
	for name, v := range weights {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	return nil
}

// #endregion load
