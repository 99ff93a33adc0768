package cmd

import (
	"encoding/json"
	"fmt"

	"prefab-reconciler/core/prefab"
	"prefab-reconciler/feature/reconcile"

	"github.com/spf13/cobra"
)

var inspectJSON bool

// inspectCmd prints the blocks of a document.
var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Print the header size and every block of a document",
	Long: `Parses a prefab or scene with the configured markers and prints each block's
id and descriptor. Useful to find out why two files do not reconcile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		doc, err := env.service.InspectFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if inspectJSON {
			data, err := json.MarshalIndent(reconcile.NewInspectResponse(doc), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode blocks: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "header: %d bytes\n", len(doc.Header))
		for i, b := range doc.Blocks {
			fmt.Fprintf(out, "%4d  &%-20d %s\n", i, b.ID, describeBlock(b))
		}
		return nil
	},
}

func describeBlock(b prefab.Block) string {
	if b.Descriptor.Kind == prefab.KindNamedEntity {
		return fmt.Sprintf("%q", b.Descriptor.Name)
	}
	return fmt.Sprintf("%s on %q", b.Descriptor.Type, b.Descriptor.Name)
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output blocks as JSON")
	RootCmd.AddCommand(inspectCmd)
}
