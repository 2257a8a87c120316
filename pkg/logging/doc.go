// Package logging provides structured logging utilities for barcart components.
//
// # Overview
//
// This package wraps the standard library slog package with barcart defaults
// so the daemon and the CLI emit the same JSON records. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages, e.g. duplicate catalog keys at load
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("barcartd", version)
//	    slog.Info("catalog loaded", "drinks", len(store.Drinks()))
//	}
//
// Setting an explicit level (the CLI does this from --log-level):
//
//	logging.SetDefaultStructuredLoggerWithLevel("barcart", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug barcartd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "catalog loaded",
//	    "module": "barcartd",
//	    "version": "v1.0.0",
//	    "drinks": 42
//	}
package logging
