// Package logging assembles the structured slog loggers used by the labrec
// CLI and supporting packages.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context helpers so command code can tag every line with the
// session id of the current invocation. Prefer these constructors over
// hand-rolled slog setup so all output shares one shape.
package logging
