package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. Changes to defaults should be intentional; these tests
// fail if a default changes unexpectedly.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default sender name is the placeholder", func(t *testing.T) {
		t.Parallel()
		if cfg.SenderName != "Your Name" {
			t.Errorf("expected SenderName 'Your Name', got %q", cfg.SenderName)
		}
	})

	t.Run("default value prop matches the original product", func(t *testing.T) {
		t.Parallel()
		if cfg.ValueProp != "revenue operations optimization" {
			t.Errorf("expected default value prop, got %q", cfg.ValueProp)
		}
	})

	t.Run("default rules are populated", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Rules.Priority.P1Keywords) == 0 {
			t.Error("expected non-empty P1 keywords")
		}
		if cfg.Rules.Archetype.StartupMaxEmployees != 50 {
			t.Errorf("expected startup max 50, got %d", cfg.Rules.Archetype.StartupMaxEmployees)
		}
		if cfg.Rules.Archetype.EnterpriseMinEmployees != 500 {
			t.Errorf("expected enterprise min 500, got %d", cfg.Rules.Archetype.EnterpriseMinEmployees)
		}
	})

	t.Run("default profiles cover all archetypes", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Profiles) != 4 {
			t.Errorf("expected 4 profiles, got %d", len(cfg.Profiles))
		}
	})
}

// TestDefaultRulesetIsolation ensures callers cannot mutate shared state
// through the returned rule set.
func TestDefaultRulesetIsolation(t *testing.T) {
	t.Parallel()

	first := DefaultRuleset()
	first.Priority.P1Keywords[0] = "mutated"

	second := DefaultRuleset()
	if second.Priority.P1Keywords[0] == "mutated" {
		t.Error("DefaultRuleset() returned shared keyword slices; expected fresh copies")
	}
}

// TestConfigValidate tests the Validate method with various configurations.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.InputPath = "leads.csv"
		return cfg
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("missing input returns ErrNoInput", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.InputPath = ""

		if err := cfg.Validate(); !errors.Is(err, ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("one format flag is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MarkdownReport = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("two format flags return ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true

		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("csv and table flags conflict", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.CSVReport = true
		cfg.TableReport = true

		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("empty sender name returns ErrEmptySenderName", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.SenderName = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptySenderName) {
			t.Errorf("expected ErrEmptySenderName, got %v", err)
		}
	})

	t.Run("empty value prop returns ErrEmptyValueProp", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ValueProp = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyValueProp) {
			t.Errorf("expected ErrEmptyValueProp, got %v", err)
		}
	})

	t.Run("inverted thresholds return ErrInvalidThresholds", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Rules.Archetype.StartupMaxEmployees = 1000
		cfg.Rules.Archetype.EnterpriseMinEmployees = 500

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidThresholds) {
			t.Errorf("expected ErrInvalidThresholds, got %v", err)
		}
	})

	t.Run("zero startup threshold returns ErrInvalidThresholds", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Rules.Archetype.StartupMaxEmployees = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidThresholds) {
			t.Errorf("expected ErrInvalidThresholds, got %v", err)
		}
	})
}
