// Package logger provides a structured logging facility based on Zap.
//
// The CLI and the HTTP server share one configured logger. Development (debug)
// and production configurations are selected from the level, and the encoding is
// either console (default, for terminals) or json.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber context
// and attaches it to the log entry, so every log line of a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Reconciled", zap.Int("remapped", 12))
package logger
