// Package logging provides structured logging using Go's standard library
// log/slog. Text output suits interactive command line use; JSON output
// suits collection pipelines.
package logging
