// Package logging assembles structured slog loggers and formatting helpers used
// across spindex.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags every line of one invocation with a run identifier so
// interleaved runs against the same pack can be told apart. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Logs are diagnostics and go to stderr (plus an optional file); stdout is
// reserved for the tool's own output.
package logging
