package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no input file is specified.
	ErrNoInput = errors.New("no input file specified: provide a CSV file path as an argument")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, --table, and --csv is specified. Only one output
	// format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, --table, and --csv cannot be combined")

	// ErrEmptySenderName is returned when the sender name resolves to an
	// empty string. The email sign-off would be blank without it.
	ErrEmptySenderName = errors.New("sender name must not be empty: set --sender or sender.name in the config file")

	// ErrEmptyValueProp is returned when the value proposition resolves to
	// an empty string. Every template references it.
	ErrEmptyValueProp = errors.New("value proposition must not be empty: set --value-prop or sender.valueProp in the config file")

	// ErrInvalidThresholds is returned when the archetype size thresholds
	// are inverted or non-positive.
	ErrInvalidThresholds = errors.New("invalid archetype thresholds: startup maximum must be positive and below the enterprise minimum")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
