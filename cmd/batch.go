package cmd

import (
	"fmt"

	"prefab-reconciler/core/config"
	"prefab-reconciler/feature/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchPattern string
	batchWorkers int
	batchDryRun  bool
)

// batchCmd reconciles whole directory trees.
var batchCmd = &cobra.Command{
	Use:   "batch <original_dir> <modified_dir>",
	Short: "Reconcile every file pair of two directory trees",
	Long: `Reconciles each file of original_dir matching the pattern with the file at
the same relative path under modified_dir. Files without a counterpart are
skipped. A failing pair does not stop the others.

Examples:
  # Every prefab and scene
  batch Assets.orig Assets

  # Only prefabs below Characters, eight at a time
  batch Assets.orig Assets --pattern "Characters/**/*.prefab" --workers 8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context(), withDatabase(), withStorage(), withConfig(func(cfg *config.Config) {
			if batchPattern != "" {
				cfg.Reconcile.Pattern = batchPattern
			}
			if batchWorkers > 0 {
				cfg.Reconcile.Workers = batchWorkers
			}
		}))
		if err != nil {
			return err
		}
		defer env.Close()

		l := env.logger
		rc := env.cfg.Reconcile
		l.Info("Starting batch reconciliation",
			zap.String("pattern", rc.Pattern),
			zap.Int("workers", rc.Workers),
			zap.Bool("dry_run", batchDryRun),
		)

		report, err := env.service.ReconcileDirs(cmd.Context(), args[0], args[1], rc.Pattern, rc.Workers, reconcile.Options{DryRun: batchDryRun})
		if err != nil {
			return err
		}

		for _, it := range report.Items {
			if it.Report != nil {
				printReport(l, it.Report)
			}
		}
		l.Info("Batch report",
			zap.Int("pairs", len(report.Items)),
			zap.Int("applied", report.Applied()),
			zap.Int("skipped", report.Skipped()),
			zap.Int("failed", report.Failed()),
		)

		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%d of %d pairs failed", n, len(report.Items))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "", "Glob of files to reconcile, relative to original_dir (default from config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Pairs reconciled concurrently (default from config)")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "Plan and report without writing any file")
	RootCmd.AddCommand(batchCmd)
}
