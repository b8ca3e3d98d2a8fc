// Package logging provides structured logging utilities for the pizza CLI.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("pizza", "v1.0.0")
//	    slog.Info("order placed", "pizza", "margherita")
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pizza", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug pizza order margherita
//
// # Output Format
//
// All logs are written to stderr in JSON format so that command output on
// stdout (the menu, the timing lines) stays clean:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "order placed",
//	    "module": "pizza",
//	    "version": "v1.0.0",
//	    "pizza": "margherita"
//	}
package logging
