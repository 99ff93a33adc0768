package cmd

import (
	"fmt"
	"os"

	"prefab-reconciler/core/config"
	"prefab-reconciler/core/logger"
	"prefab-reconciler/feature/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	dryRun       bool
	backupSuffix string
)

// RootCmd reconciles a modified document against its original when called
// with two paths.
var RootCmd = &cobra.Command{
	Use:   "prefab-reconciler <original> <modified>",
	Short: "Restore stable block ids in edited Unity prefabs",
	Long: `prefab-reconciler renumbers the blocks of a modified Unity prefab or scene
to the ids of the matching blocks in the original file and rewrites every
reference accordingly. The modified file is replaced in place; its previous
content is kept next to it with the backup suffix.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReconcile,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding .env and config.yaml")
	RootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan and report without writing any file")
	RootCmd.Flags().StringVar(&backupSuffix, "backup-suffix", "", "Suffix of the backup file (default from config, \".bak\")")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.Context(), withDatabase(), withStorage(), withConfig(func(cfg *config.Config) {
		if backupSuffix != "" {
			cfg.Reconcile.BackupSuffix = backupSuffix
		}
	}))
	if err != nil {
		return err
	}
	defer env.Close()

	report, err := env.service.ReconcileFiles(cmd.Context(), args[0], args[1], reconcile.Options{DryRun: dryRun})
	if err != nil {
		return err
	}

	printReport(env.logger, report)
	return nil
}

// printReport logs the outcome of a file reconciliation.
func printReport(l *zap.Logger, report *reconcile.Report) {
	s := report.Plan.Summary
	fields := []zap.Field{
		zap.String("modified", report.ModifiedPath),
		zap.Int("blocks", s.OriginalBlocks),
		zap.Int("remapped", s.Remapped),
		zap.Int("dropped", s.Dropped),
		zap.Bool("changed", s.Changed),
	}

	if !report.Applied {
		l.Info("Dry-run mode: No changes were made.", fields...)
		for _, b := range report.Plan.Dropped {
			l.Info("Would drop block", zap.Uint64("id", b.ID), zap.Stringer("descriptor", b.Descriptor))
		}
		return
	}

	fields = append(fields, zap.String("backup", report.BackupPath))
	if report.BackupKey != "" {
		fields = append(fields, zap.String("backup_key", report.BackupKey))
	}
	l.Info("Reconciled", fields...)
	for _, b := range report.Plan.Dropped {
		l.Warn("Dropped block without original counterpart", zap.Uint64("id", b.ID), zap.Stringer("descriptor", b.Descriptor))
	}
}
