package main

import (
	"fmt"

	"datareport/adapters/excel"
	"datareport/internal/dataset"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCleanCmd(a *app) *cobra.Command {
	var recipePath, outPath string

	cmd := &cobra.Command{
		Use:   "clean --recipe recipe.json",
		Short: "Apply a cleaning recipe and write the result",
		Long: `Apply a JSON cleaning recipe to the input table.

The recipe is an array of steps (or an object with a "steps" array). Each step
has an "op" (removeDuplicates, removeRowsWithEmptyValues, fillEmpty,
fillEmptyStat, replaceWithValue, replaceWithStat, removeRowsWhere, round) and
the fields that op reads: column, operator, value, replaceWith, statistic,
decimals.

Example: datareport clean -f data.csv --recipe recipe.json --out clean.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(recipePath)
			if err != nil {
				return err
			}
			steps, err := dataset.ParseRecipe(raw)
			if err != nil {
				return err
			}

			src, err := a.loadTable(cmd, a.hasHeaders())
			if err != nil {
				return err
			}
			df := dataset.FromTable(src)
			if err := dataset.Apply(df, steps); err != nil {
				return err
			}

			out := df.Table()
			if outPath == "" {
				if err := excel.WriteCSV(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else if err := excel.WriteFile(outPath, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d steps applied: %s rows in, %s rows out\n",
				len(steps), humanize.Comma(int64(src.NumDataRows())), humanize.Comma(int64(df.Len())))
			return nil
		},
	}

	cmd.Flags().StringVar(&recipePath, "recipe", "", "JSON cleaning recipe")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output .csv or .xlsx file (default: CSV on stdout)")
	_ = cmd.MarkFlagRequired("recipe")
	return cmd
}
