// Package history exposes recorded reconcile runs over HTTP.
//
// The feature is only enabled when the history database is configured.
//
// # HTTP Endpoints
//
//   - GET /history : latest runs (supports ?limit=N).
//   - GET /history/:id : a single run.
package history
