package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic handling with errors.Is().
var (
	// ErrMissingColumn is matched by MissingColumnError values.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyInput is returned when the file has no header row.
	ErrEmptyInput = errors.New("input is empty: expected a header row")

	// ErrNoDataRows is returned when the file has a header but no leads.
	ErrNoDataRows = errors.New("input contains no data rows")
)

// MissingColumnError reports a required canonical column that no input
// header matched. This is a header-level failure: the whole import aborts
// because every row would be unprocessable.
type MissingColumnError struct {
	// Column is the canonical column name that could not be resolved.
	Column string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s (no header alias matched)", e.Column)
}

// Is reports whether target is ErrMissingColumn, enabling
// errors.Is(err, ErrMissingColumn) without a type assertion.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// RowError reports a data row whose required fields are empty.
// Returned only in strict mode; the default policy skips the row instead.
type RowError struct {
	// Row is the 1-based row number in the source file.
	Row int

	// Fields are the canonical names of the empty required fields.
	Fields []string
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: missing required field(s): %s", e.Row, strings.Join(e.Fields, ", "))
}
