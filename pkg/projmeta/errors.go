package projmeta

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := gen.Generate(meta, opts)
//	if errors.Is(err, projmeta.ErrInvalidMetadata) {
//	    // Handle a malformed version or missing field
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMetadata indicates the project metadata failed validation.
	ErrInvalidMetadata = errors.New("invalid project metadata")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidMetadata):
		return ExitInvalidMetadata
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	}

	// cobra resolves subcommands before any hook runs, so this one stays a plain error
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsageError
	}

	return ExitGeneralError
}

// NewUsageError marks err as command-line misuse while keeping its message.
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() []error {
	return []error{ErrUsage, e.err}
}
