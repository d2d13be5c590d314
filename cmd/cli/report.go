package main

import (
	"encoding/json"
	"fmt"

	"datareport/internal/report"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report SPEC.json",
		Short: "Clean the input and evaluate the blocks of a report spec",
		Long: `Run a JSON report spec over the input table:

  {
    "hasHeaders": true,
    "pipeline": [{"op": "removeDuplicates"}],
    "blocks": [
      {"kind": "stat", "statType": "Mean", "col": "Age"},
      {"kind": "interval", "intervalType": "1SampTInterval", "col": "Age", "confidence": 0.9},
      {"kind": "test", "testType": "1SampTTest", "col": "Age", "testAgainst": "30", "tails": "greater"}
    ]
  }

Blocks are evaluated concurrently (REPORT_WORKERS) and printed in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args[0])
			if err != nil {
				return err
			}
			spec, err := report.ParseSpec(raw, a.cfg.Report.Confidence)
			if err != nil {
				return err
			}

			src, err := a.loadTable(cmd, spec.HasHeaders && !a.noHeaders)
			if err != nil {
				return err
			}
			results, cleaned, err := spec.Run(cmd.Context(), src, a.cfg.Report.Workers)
			if err != nil {
				return err
			}
			a.log.Info("report: %s rows after cleaning, %d blocks", humanize.Comma(int64(cleaned.NumDataRows())), len(results))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printf(cmd, "%s\n", r.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}
