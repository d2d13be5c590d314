package main

import (
	"fmt"

	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/internal/analysis/intervals"
	apperrors "datareport/internal/errors"

	"github.com/spf13/cobra"
)

func newIntervalCmd(a *app) *cobra.Command {
	var confidence float64

	cmd := &cobra.Command{
		Use:   "interval TYPE COLUMN [COLUMN2]",
		Short: "Compute a confidence interval",
		Long: `Compute a confidence interval. TYPE is one of 1SampTInterval,
2SampTInterval, 1SampZInterval, 2SampZInterval or 2SampVarInterval. Z-intervals
read binary columns (1/0, yes/no, true/false, y/n).

Example: datareport interval -f people.csv 1SampTInterval Age --confidence 0.9`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, ok := stats.ParseIntervalType(args[0])
			if !ok {
				return apperrors.UnsupportedOperation(fmt.Sprintf("interval type %q", args[0]), core.ErrUnknownInterval)
			}
			col, col2 := args[1], ""
			if len(args) == 3 {
				col2 = args[2]
			}
			if it.IsTwoSample() && col2 == "" {
				return apperrors.InvalidInput(fmt.Sprintf("%s needs two columns", it))
			}
			if !cmd.Flags().Changed("confidence") {
				confidence = a.cfg.Report.Confidence
			}

			t, err := a.loadTable(cmd, a.hasHeaders())
			if err != nil {
				return err
			}
			iv := intervals.FromTable(t, it, col, col2, confidence)
			printf(cmd, "%s\n", intervals.Text(confidence, it, col, col2, iv))
			return nil
		},
	}

	cmd.Flags().Float64Var(&confidence, "confidence", 0.95, "confidence level in (0, 1) (default REPORT_CONFIDENCE)")
	return cmd
}
