package cli

import (
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show the RawGeo to Geo layer type map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		types, err := cfg.Types()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return newReportWriter(out).JSON(types.Pairs())
		}

		pairs := types.Pairs()
		PrintSection(out, "Layer Types")
		rows := make([][]string, 0, len(pairs))
		for _, p := range pairs {
			rows = append(rows, []string{p.Raw, p.Finished})
		}
		PrintTable(out, []string{"RawGeo", "Geo"}, rows)
		return nil
	},
}
