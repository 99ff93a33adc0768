package config

import "prefab-reconciler/core/prefab"

// ReconcileConfig holds settings of the reconcile engine and its file handling.
type ReconcileConfig struct {
	// Markers are the field markers used to describe blocks.
	Markers prefab.Dialect `mapstructure:"markers"`
	// BackupSuffix is appended to a modified file's path to keep its previous content.
	BackupSuffix string `mapstructure:"backup_suffix" default:".bak"`
	// Pattern selects files in batch mode (doublestar syntax).
	Pattern string `mapstructure:"pattern" default:"**/*.{prefab,unity}"`
	// Workers is the number of file pairs reconciled concurrently in batch mode.
	Workers int `mapstructure:"workers" default:"4"`
}
