// Package logging provides concrete implementations of the projmeta.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr, coloring the level tag on terminals
//   - NullLogger: Discards all messages (useful for testing and dry runs)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
