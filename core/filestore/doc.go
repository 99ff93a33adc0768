// Package filestore persists reconciled documents.
//
// A document is replaced in three steps: the new content is written to a
// temporary file next to the target and synced, the target is renamed to its
// backup path, and the temporary file is renamed onto the target. A failure
// before the backup rename leaves the target untouched; a failure after it moves
// the backup back.
package filestore
