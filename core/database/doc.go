// Package database manages the optional SQL connection used for run history.
//
// It supports MySQL for shared installations and SQLite for a local file (or
// ":memory:" in tests), both through GORM.
//
// # Connection
//
// Connect builds the dialector from the configuration, applies pool settings
// and verifies the connection with a ping bounded by the configured timeout.
//
// # Inspection
//
// GetTableColumns lists the columns of a table for both dialects; the history
// repository uses it to verify its schema after migration.
package database
