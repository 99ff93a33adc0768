// Package config provides configuration management for prefab-reconciler.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// environment variables and a .env file. Defaults are declared with `default`
// struct tags next to each setting.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Reconcile: block markers, backup suffix, batch pattern and workers
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: run history database (disabled by default)
//   - Storage: S3/MinIO backup mirroring (disabled by default)
//   - Log: logging level and format
//
// Environment variables use the upper-cased key path joined with underscores,
// e.g. RECONCILE_BACKUP_SUFFIX or DATABASE_ENABLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.BackupSuffix)
package config
