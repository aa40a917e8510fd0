// Package logging assembles the structured slog loggers used by phashbench.
//
// It owns the console and JSON handlers, maps configuration levels onto slog
// levels, and fans output to stdout/stderr and an optional log file. Console
// output colours the level label only when writing to a terminal. Logs carry
// diagnostics; fingerprints and tables are written by the CLI directly.
package logging
