package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/sheetcheck/internal/engine"
)

var inventoryOutput string

var inventoryCmd = &cobra.Command{
	Use:   "inventory STORE",
	Short: "List the feature classes of a data store",
	Long: `Read the catalog of one data store and print it as a YAML manifest.

The manifest lists top-level feature classes and each feature dataset with its
nested feature classes. It can be passed to check in place of the store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}

		result, err := eng.Inventory(context.Background(), &engine.InventoryRequest{
			Store:  args[0],
			Output: inventoryOutput,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Written != "" {
			n := len(result.Manifest.Identifiers())
			PrintSuccess(out, fmt.Sprintf("Wrote %s to %s", PrintCount(n, "feature class", "feature classes"), result.Written))
			return nil
		}

		if jsonOutput {
			return newReportWriter(out).JSON(result.Manifest)
		}
		_, err = out.Write(result.Data)
		return err
	},
}

func init() {
	inventoryCmd.Flags().StringVarP(&inventoryOutput, "output", "o", "", "Write the manifest to a file instead of stdout")
}
