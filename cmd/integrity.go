package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"prefab-reconciler/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the history database and the backup bucket",
	Long: `Checks that the backup bucket exists and that the history tables have every
expected column. Nothing is created unless --fix is given. Disabled components
are reported as such.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context(), withDatabase(), withStorage(), withoutProvisioning())
		if err != nil {
			return err
		}
		defer env.Close()

		l := env.logger
		svc := integrity.NewService(env.client, env.cfg.Storage.Bucket, l, env.db)
		healthy, err := runIntegrity(cmd.Context(), svc, fixFlag, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !healthy {
			l.Warn("Integrity check found problems")
			return errors.New("integrity check failed")
		}
		l.Info("Integrity check passed", zap.Bool("fix", fixFlag))
		return nil
	},
}

// runIntegrity runs every check, repairing what it can when fix is set, writes
// the JSON report to out and reports whether all enabled components are healthy.
func runIntegrity(ctx context.Context, svc *integrity.Service, fix bool, out io.Writer) (bool, error) {
	report := make(map[string]any)
	healthy := true

	storageReport, err := svc.CheckStorage(ctx)
	switch {
	case errors.Is(err, integrity.ErrDisabled):
		report["storage"] = "disabled"
	case err != nil:
		return false, err
	default:
		if !storageReport.BucketExists && fix {
			if err := svc.FixStorage(ctx); err != nil {
				return false, err
			}
			storageReport.BucketExists = true
		}
		healthy = healthy && storageReport.BucketExists
		report["storage"] = storageReport
	}

	schemaReport, err := svc.CheckDatabase()
	switch {
	case errors.Is(err, integrity.ErrDisabled):
		report["database"] = "disabled"
	case err != nil:
		return false, err
	default:
		if !schemaReport.Matched && fix {
			if err := svc.FixDatabase(); err != nil {
				return false, err
			}
			if schemaReport, err = svc.CheckDatabase(); err != nil {
				return false, err
			}
		}
		healthy = healthy && schemaReport.Matched
		report["database"] = schemaReport
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return healthy, nil
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the backup bucket and migrate the history tables if needed")
	RootCmd.AddCommand(integrityCmd)
}
