package render

import (
	"errors"
	"fmt"
)

// ErrUnknownPlaceholder is matched by RenderError values.
var ErrUnknownPlaceholder = errors.New("template references unknown placeholder")

// RenderError reports a template placeholder with no corresponding lead
// field. This is a per-row error: the batch continues and the affected
// lead ships without scripts.
type RenderError struct {
	// Placeholder is the unresolvable placeholder name, without braces.
	Placeholder string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("template references unknown placeholder {{%s}}", e.Placeholder)
}

// Is reports whether target is ErrUnknownPlaceholder, enabling
// errors.Is(err, ErrUnknownPlaceholder) without a type assertion.
func (e *RenderError) Is(target error) bool {
	return target == ErrUnknownPlaceholder
}
