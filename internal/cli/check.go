package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/sheetcheck/internal/engine"
	"github.com/danieljhkim/sheetcheck/internal/report"
)

var failOnMismatch bool

var checkCmd = &cobra.Command{
	Use:   "check [RAWGEO GEO]",
	Short: "Cross-check RawGeo and Geo layer sheets",
	Long: `Compare the layer feature classes of a RawGeo and a Geo data store.

Prints the per-type totals, then one line per missing counterpart or duplicated
layer for every job location and sheet. Without arguments the stores from the
configuration are checked.

Supported stores: GeoPackage (.gpkg), catalog manifests (.yaml, .yml, .json)
and folders of shapefiles.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}

		req := &engine.CheckRequest{
			RawGeo: cfg.RawGeo,
			Geo:    cfg.Geo,
		}
		if len(args) == 2 {
			req.RawGeo = args[0]
			req.Geo = args[1]
		}

		result, err := eng.Check(context.Background(), req)
		if err != nil {
			return err
		}

		w := newReportWriter(cmd.OutOrStdout())
		if jsonOutput {
			err = w.JSON(report.Document{
				RawGeo:   result.RawGeo,
				Geo:      result.Geo,
				Totals:   result.Report.Totals,
				Findings: result.Report.Findings,
				Skipped: map[string]report.Skipped{
					"rawgeo": engine.SkippedByReason(result.Raw),
					"geo":    engine.SkippedByReason(result.Finished),
				},
			})
		} else {
			err = w.Text(result.Report)
		}
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if failOnMismatch && result.Report.HasFindings() {
			return fmt.Errorf("%w: %s", engine.ErrMismatch, PrintCount(len(result.Report.Findings), "finding", "findings"))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&failOnMismatch, "fail-on-mismatch", false, "Exit with an error when any mismatch or duplicate is found")
}
