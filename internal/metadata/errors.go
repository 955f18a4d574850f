package metadata

import (
	"fmt"

	"github.com/vvka-141/projmeta/pkg/projmeta"
)

// ValidationError describes a metadata field that failed validation,
// together with an actionable suggestion for fixing it.
type ValidationError struct {
	Field   string // Field name ("group", "name", "version")
	Value   string // Offending value as supplied
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("the project %s '%s' is invalid: %s", e.Field, e.Value, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets callers match any validation failure with errors.Is(err, projmeta.ErrInvalidMetadata).
func (e *ValidationError) Unwrap() error {
	return projmeta.ErrInvalidMetadata
}
