package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The sender defaults are deliberately generic placeholders; real runs are
// expected to override them via flags or the config file.
const (
	// DefaultSenderName appears in email sign-offs when no sender is
	// configured. Kept obviously-placeholder so users notice it.
	DefaultSenderName = "Your Name"

	// DefaultValueProp is the value proposition substituted into templates
	// when none is configured. Mirrors the product's original default.
	DefaultValueProp = "revenue operations optimization"

	// AppName is the application name used for XDG directory paths.
	AppName = "leadscript"
)

// Config holds all runtime options for leadscript.
// This struct is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
type Config struct {
	// InputPath is the lead CSV file to process.
	InputPath string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .leadscript in the current directory,
	// the XDG config directory, and the user's home directory.
	ConfigFilePath string

	// SenderName appears in the email sign-off of generated scripts.
	SenderName string

	// ValueProp is the value proposition woven into every template.
	ValueProp string

	// Strict aborts the run when a row is missing a required field.
	// When false (default), such rows are skipped and counted.
	Strict bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON output instead of the human-readable preview.
	// Mutually exclusive with the other format flags.
	JSONReport bool

	// MarkdownReport enables Markdown output with summary tables and a
	// priority-distribution chart. Mutually exclusive with other formats.
	MarkdownReport bool

	// TableReport enables a compact terminal summary table.
	// Mutually exclusive with other formats.
	TableReport bool

	// CSVReport enables CSV export: the original columns with the script
	// columns appended. Mutually exclusive with other formats. Selected
	// automatically when the output path ends in ".csv".
	CSVReport bool

	// OutputFile is the report destination. Empty means stdout.
	// Directories are created automatically if they don't exist.
	OutputFile string

	// PriorityFilter limits the output to a single tier when non-empty.
	// Accepts "P1", "P2", or "P3" (and their full labels).
	PriorityFilter string

	// Rules holds the classification keyword lists and thresholds.
	Rules Ruleset

	// Profiles maps each archetype to its pain points, values, and tone.
	Profiles Profiles

	// ExtraAliases maps canonical column names to additional header aliases
	// loaded from the config file. Merged on top of the loader's built-in
	// alias table.
	ExtraAliases map[string][]string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (sender identity,
// rule sets, profiles). This also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		SenderName: DefaultSenderName,
		ValueProp:  DefaultValueProp,
		Rules:      DefaultRuleset(),
		Profiles:   DefaultProfiles(),
	}
}

// XDGConfigDir returns the XDG config directory for leadscript.
// On Linux: ~/.config/leadscript
// On macOS: ~/Library/Application Support/leadscript
// On Windows: %APPDATA%\leadscript
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
// Called once after CLI parsing, before any file is read, so users get
// clear error messages upfront instead of mid-run failures.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	// Only one output format may be active.
	formats := 0
	for _, enabled := range []bool{c.JSONReport, c.MarkdownReport, c.TableReport, c.CSVReport} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	if c.SenderName == "" {
		return ErrEmptySenderName
	}
	if c.ValueProp == "" {
		return ErrEmptyValueProp
	}

	return c.Rules.Validate()
}
