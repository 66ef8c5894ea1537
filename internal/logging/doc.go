// Package logging assembles structured slog loggers and formatting helpers used
// across knobgenre.
//
// It owns the console and JSON handlers, routes a JSON copy of every record to
// a size-rotated log file, and exposes context-aware helpers so pass code can
// tag log lines with track IDs, pass names, and run correlation IDs. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
