// Package integrity provides health checks of the optional infrastructure.
//
// # Checks Provided
//
//   - Storage: Checks that the backup bucket exists and reports whether it already holds backups.
//   - Database: Validates that the history tables have every column of their GORM models.
//
// A check of a disabled component reports "disabled".
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/database : Runs database schema check.
package integrity
