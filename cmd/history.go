package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists recorded runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded reconcile runs",
	Long:  `Lists the latest reconcile runs stored in the history database, newest first. Requires DATABASE_ENABLED=true.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context(), withDatabase(), withoutProvisioning())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.requireHistory(); err != nil {
			return err
		}

		runs, err := env.repo.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if historyJSON {
			data, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode runs: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, r := range runs {
			status := r.Status
			if r.ErrorCode != "" {
				status += " (" + r.ErrorCode + ")"
			}
			fmt.Fprintf(out, "%s  %s  %-5s  %-24s remapped=%-4d dropped=%-4d %s\n",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.ID, r.Source, status, r.Remapped, r.Dropped, r.ModifiedPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output runs as JSON")
	RootCmd.AddCommand(historyCmd)
}
