package projmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Generation completed (or was skipped as up to date)
	ExitGeneralError    = 1  // Unknown or unclassified error, including I/O failures
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration (bad projmeta.yaml, unknown language)
	ExitInvalidMetadata = 11 // Metadata failed validation (e.g. malformed version)
)

const (
	// ConfigFileName is the project file read from the project directory.
	ConfigFileName = "projmeta.yaml"

	// EnvPrefix prefixes the environment variables that supply metadata values.
	EnvPrefix = "PROJMETA_"

	// FormatVersion identifies the layout of generated files.
	// Bump it whenever the rendered text changes so stale outputs are rewritten.
	FormatVersion = 1

	// ExampleVersion is suggested to users whose version fails validation.
	ExampleVersion = "1.0.0"
)
