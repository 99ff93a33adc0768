// Package history records reconcile runs in the optional database.
//
// Every run of the CLI, batch command or HTTP API produces one Run row with its
// paths, block counts, outcome and, when storage is enabled, the key of the
// archived backup. The table is created with GORM AutoMigrate.
package history
