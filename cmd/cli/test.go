package main

import (
	"fmt"

	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/internal/analysis/hypothesis"
	apperrors "datareport/internal/errors"

	"github.com/spf13/cobra"
)

func newTestCmd(a *app) *cobra.Command {
	var (
		td      stats.TestData
		tails   string
		columns []string
	)

	cmd := &cobra.Command{
		Use:   "test TYPE [COLUMN] [COLUMN2]",
		Short: "Run a hypothesis test and narrate the result",
		Long: `Run a hypothesis test. TYPE is one of X2GOFTest, X2IndTest, 2SampTTest,
MPTTest, 1SampTTest, 2SampZTest, 1SampZTest, 2SampVarTest, ANOVATest or
LinRegTest. X2IndTest and ANOVATest read --columns, or every column when none
are given.

Examples:
  datareport test -f scores.csv 1SampTTest Score --against 70 --tails greater --conclusion
  datareport test -f survey.csv X2GOFTest Answer --expected 25,25,50
  datareport test -f groups.csv ANOVATest --columns A,B,C`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tt, ok := stats.ParseTestType(args[0])
			if !ok {
				return apperrors.UnsupportedOperation(fmt.Sprintf("test type %q", args[0]), core.ErrUnknownTest)
			}
			if td.Tails, ok = stats.ParseTails(tails); !ok {
				return apperrors.InvalidInput(fmt.Sprintf("tails must be two-sided, less or greater (got %q)", tails))
			}

			d := stats.TestDescriptor{TestType: tt, Columns: columns, TestData: td}
			if len(args) > 1 {
				d.Col = args[1]
			}
			if len(args) > 2 {
				d.Col2 = args[2]
			}
			switch {
			case tt != stats.ChiSquaredIndependence && tt != stats.OneWayANOVA && d.Col == "":
				return apperrors.InvalidInput(fmt.Sprintf("%s needs a column", tt))
			case tt.IsTwoSample() && d.Col2 == "":
				return apperrors.InvalidInput(fmt.Sprintf("%s needs two columns", tt))
			}

			t, err := a.loadTable(cmd, a.hasHeaders())
			if err != nil {
				return err
			}
			res := hypothesis.Run(t, d)
			printf(cmd, "%s\n", hypothesis.Narrate(d, res, hypothesis.GatherEvidence(t, d)))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&td.Alpha, "alpha", 0.05, "significance level")
	f.StringVar(&tails, "tails", string(stats.TwoSided), "alternative: two-sided, less or greater")
	f.StringVar(&td.TestAgainst, "against", "", "hypothesized mean or proportion for one-sample tests")
	f.StringSliceVar(&td.ExpCounts, "expected", nil, "expected counts or proportions for X2GOFTest, in first-seen category order")
	f.StringSliceVar(&columns, "columns", nil, "columns compared by X2IndTest and ANOVATest")
	f.StringVar(&td.H0, "h0", "", "null hypothesis text")
	f.StringVar(&td.Ha, "ha", "", "alternative hypothesis text")
	f.BoolVar(&td.Rand, "random", false, "the data come from a random sample")
	f.BoolVar(&td.ShowConclusion, "conclusion", false, "compare the p-value with alpha")
	return cmd
}
