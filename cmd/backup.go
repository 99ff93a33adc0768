package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backupRunID string
	backupOut   string
)

// backupCmd is the parent command for mirrored backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Browse backups mirrored to object storage",
	Long:  `Lists and downloads the pre-reconcile copies uploaded to the storage bucket. Requires STORAGE_ENABLED=true.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mirrored backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context(), withStorage(), withoutProvisioning())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.requireArchive(); err != nil {
			return err
		}

		objects, err := env.archive.List(cmd.Context(), backupRunID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, o := range objects {
			fmt.Fprintf(out, "%s  %8d  %s\n", o.LastModified.Local().Format("2006-01-02 15:04:05"), o.Size, o.Key)
		}
		return nil
	},
}

var backupFetchCmd = &cobra.Command{
	Use:   "fetch <key>",
	Short: "Download a mirrored backup",
	Long: `Downloads the backup stored under key to stdout, or to the file given with --out.

Examples:
  backup fetch backups/2b0c.../Player.prefab --out Player.prefab`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context(), withStorage(), withoutProvisioning())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.requireArchive(); err != nil {
			return err
		}

		data, err := env.archive.Fetch(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if backupOut == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(backupOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", backupOut, err)
		}
		env.logger.Info("Fetched backup", zap.String("key", args[0]), zap.String("out", backupOut), zap.Int("bytes", len(data)))
		return nil
	},
}

func init() {
	backupListCmd.Flags().StringVar(&backupRunID, "run", "", "Only list the backups of this run id")
	backupFetchCmd.Flags().StringVarP(&backupOut, "out", "o", "", "Write the backup to this file instead of stdout")

	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupFetchCmd)
	RootCmd.AddCommand(backupCmd)
}
