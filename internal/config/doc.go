// Package config holds all configuration for leadscript.
//
// This package contains:
//   - Config: Runtime options populated from CLI flags
//   - Ruleset: Keyword lists and size thresholds driving classification
//   - Profile: Per-archetype pain points, values, and tone
//   - File: The on-disk YAML configuration (.leadscript) and its loader
//
// Design decision: Keyword lists, thresholds, and archetype profiles are
// explicit immutable values passed into the classifier and renderer rather
// than module-level mutable state. Defaults are constructed fresh by the
// Default* functions so callers can never mutate shared state by accident.
package config
