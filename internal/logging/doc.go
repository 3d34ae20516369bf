// Package logging provides structured logging for the geolocation client.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the module: state machine transitions, connection
// events against the geolocation service, parsed response lines, and clock
// corrections.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed protocol info (state changes, parsed lines)
//   - Info: Normal operations (connections, clock corrections)
//   - Warn: Non-fatal issues (implausible dates, dropped corrections)
//   - Error: Request failures
//
// # Configuration
//
// Logging is silent by default so library consumers see no output. Set the
// GEOLOC_LOG_LEVEL environment variable, or call Initialize with an explicit
// level, to enable it:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
// All log functions use structured fields for queryability. Every request is
// tagged with a correlation ID so interleaved log lines from consecutive
// requests can be told apart:
//
//	logging.Info("Connection event",
//	    zap.String("request_id", id),
//	    zap.String("host", "ip-api.com"),
//	    zap.String("event", "connected"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
