package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for projmeta.
type Mode int

const (
	// ModeNonInteractive is used for build scripts, CI pipelines and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// nonInteractiveEnv lists variables that force non-interactive mode and the
// value that triggers it ("" means any non-empty value).
var nonInteractiveEnv = []struct {
	name  string
	value string
}{
	{"PROJMETA_NON_INTERACTIVE", "1"},
	{"CI", ""},
	{"NO_COLOR", ""},
}

// DetectMode determines whether projmeta should prompt for missing values.
// Generation is usually driven by a build, so anything other than a human at
// a terminal on both stdin and stdout is non-interactive.
func DetectMode() Mode {
	if envForcesNonInteractive() {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// envForcesNonInteractive reports whether any nonInteractiveEnv trigger is set.
func envForcesNonInteractive() bool {
	for _, env := range nonInteractiveEnv {
		v := os.Getenv(env.name)
		if (env.value == "" && v != "") || (env.value != "" && v == env.value) {
			return true
		}
	}
	return false
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
