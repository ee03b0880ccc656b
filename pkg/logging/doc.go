// Package logging provides structured logging utilities for k3sgate components.
//
// This package wraps the standard library slog package with service-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration (LOG_LEVEL), module and
// version context injection, and source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("k3sgated", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "k3sgated",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
