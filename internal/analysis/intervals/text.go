package intervals

import (
	"fmt"
	"math"

	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal/analysis/descriptive"
)

// ConfigurationRequired is rendered in place of an interval that cannot be
// computed from the current settings.
const ConfigurationRequired = "Configuration Required"

var parameters = map[stats.IntervalType]string{
	stats.OneSampleTInterval:   "mean of",
	stats.TwoSampleTInterval:   "difference between means of",
	stats.TwoSampleZInterval:   "difference between proportions of",
	stats.OneSampleZInterval:   "proportion of",
	stats.TwoSampleVarInterval: "ratio of variances of",
}

// Parameter names the quantity an interval type estimates, or "" for an
// unknown type.
func Parameter(it stats.IntervalType) string {
	return parameters[it]
}

// ColumnNames joins one or two column names for display.
func ColumnNames(col, col2 string) string {
	if col2 == "" {
		return col
	}
	return col + " and " + col2
}

// Text renders an interval as a sentence such as
// "95% confidence interval for the mean of Age: [21, 29]". The second column
// is only mentioned for two-sample types.
func Text(confidence float64, it stats.IntervalType, col, col2 string, iv *stats.Interval) string {
	param := Parameter(it)
	if col == "" || iv == nil || math.IsNaN(confidence) || param == "" {
		return ConfigurationRequired
	}
	if !it.IsTwoSample() {
		col2 = ""
	}
	return fmt.Sprintf("%s%% confidence interval for the %s %s: [%s, %s]",
		descriptive.FormatNumber(math.Round(confidence*100)), param, ColumnNames(col, col2),
		descriptive.FormatNumber(iv.Lower), descriptive.FormatNumber(iv.Upper))
}

// DeclaredTypeFor is the coercion used to extract interval data: z-intervals
// estimate proportions from binary columns, everything else reads numbers.
func DeclaredTypeFor(it stats.IntervalType) table.DeclaredType {
	switch it {
	case stats.OneSampleZInterval, stats.TwoSampleZInterval:
		return table.Binary
	}
	return table.Quantitative
}

// FromTable extracts the interval's columns from t and computes it. A column
// that does not resolve yields nil.
func FromTable(t table.Table, it stats.IntervalType, col, col2 string, confidence float64) *stats.Interval {
	typ := DeclaredTypeFor(it)
	data := columnData(t, col, typ)
	var data2 []float64
	if it.IsTwoSample() {
		data2 = columnData(t, col2, typ)
	}
	return Compute(it, data, data2, confidence)
}

func columnData(t table.Table, col string, typ table.DeclaredType) []float64 {
	if coercer.ResolveColumn(t, col) < 0 {
		return nil
	}
	return coercer.GetData(t, col, typ).Numbers
}
