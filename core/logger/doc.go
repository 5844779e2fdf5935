// Package logger provides slog attribute helpers shared across the module.
// Helpers return an empty Attr for nil inputs so call sites never need
// explicit nil checks.
package logger
