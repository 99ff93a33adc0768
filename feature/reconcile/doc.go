// Package reconcile implements the reconcile feature on top of core/reconcile.
//
// The Service is the orchestrator: it reads the original and the modified
// document, plans the reconciliation, mirrors the backup to object storage when
// enabled, replaces the modified file while keeping a local backup, and records
// the run in the history database when enabled. Every failure aborts the run
// before the modified file is touched.
//
// # Components
//
//   - Service: file, batch and in-memory reconciliation.
//   - Handler: HTTP endpoints for the same operations.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - POST /reconcile : reconcile two documents sent in the body.
//   - POST /reconcile/inspect : list the blocks and descriptors of a document.
package reconcile
