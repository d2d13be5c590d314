package main

import (
	"fmt"

	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal/analysis/descriptive"
	apperrors "datareport/internal/errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "describe COLUMN",
		Short: "Print descriptive statistics for a column",
		Long: `Print descriptive statistics for a quantitative column. Cells that are
not numbers count as NaN, so any of them makes every statistic NaN.

Example: datareport describe -f people.csv Age --stat mean,median,iqr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := stats.Statistics()
			if len(names) > 0 {
				selected = selected[:0]
				for _, n := range names {
					s, ok := stats.ParseStatistic(n)
					if !ok {
						return apperrors.WithCode(apperrors.CodeInvalidInput, fmt.Errorf("%w %q", core.ErrUnknownStatistic, n))
					}
					selected = append(selected, s)
				}
			}

			t, err := a.loadTable(cmd, a.hasHeaders())
			if err != nil {
				return err
			}
			if coercer.ResolveColumn(t, args[0]) < 0 {
				return apperrors.WithCode(apperrors.CodeNotFound, core.NewColumnNotFoundError(args[0]))
			}

			values := coercer.GetData(t, args[0], table.Quantitative).Numbers
			printf(cmd, "%s (n = %s)\n", args[0], humanize.Comma(int64(len(values))))
			for _, s := range selected {
				v, _ := descriptive.Apply(values, s)
				printf(cmd, "  %-7s %s\n", s, descriptive.FormatNumber(v))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "stat", nil, "statistics to print: mean, stdev, median, mode, iqr, range, min, max (default all)")
	return cmd
}
