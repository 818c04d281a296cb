// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the command line helpers and the
// preview server. Build helpers run inside a firmware build, so log lines go
// to stdout by default where the build tool collects console output.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//   - Output: stdout (default), stderr or a file path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Warn("Missing web files", zap.Strings("missing", missing))
//
//	// In a preview server handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
