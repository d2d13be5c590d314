package report

import (
	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/table"
	"datareport/internal/analysis/descriptive"
)

// ConfigurationRequired replaces the text of a block whose settings are
// incomplete.
const ConfigurationRequired = "Configuration Required"

// unavailable is the value text of a paired statistic whose columns differ
// in length or whose second column is missing.
const unavailable = "null"

type statKind struct {
	label   string
	compute func(x, y []float64) (float64, bool)
	paired  bool
}

func single(f func([]float64) float64) func(x, y []float64) (float64, bool) {
	return func(x, _ []float64) (float64, bool) { return f(x), true }
}

var statKinds = map[string]statKind{
	"Mean":                    {label: "Mean", compute: single(descriptive.Mean)},
	"StDev":                   {label: "Standard Deviation", compute: single(descriptive.Std)},
	"Median":                  {label: "Median", compute: single(descriptive.Median)},
	"IQR":                     {label: "IQR", compute: single(descriptive.IQR)},
	"Min":                     {label: "Minimum", compute: single(descriptive.Min)},
	"Max":                     {label: "Maximum", compute: single(descriptive.Max)},
	"Range":                   {label: "Range", compute: single(descriptive.Range)},
	"R-Squared":               {label: "R-Squared", compute: descriptive.RSquared, paired: true},
	"Correlation Coefficient": {label: "Correlation Coefficient", compute: descriptive.CorrelationCoefficient, paired: true},
}

// StatTypes lists the statistic names a stat block accepts.
func StatTypes() []string {
	return []string{"Mean", "StDev", "Median", "IQR", "Min", "Max", "Range", "R-Squared", "Correlation Coefficient"}
}

// StatText renders a stat block over t, e.g. "Mean of Age: 25.5" or
// "Correlation Coefficient of Age vs. Height: 0.65". An unknown statistic
// renders ConfigurationRequired; a block without a column renders the label
// followed by ": Source Configuration Required". Statistics over no numeric
// data render as NaN, and a paired statistic over mismatched columns as null.
func StatText(b Block, t table.Table) string {
	kind, ok := statKinds[b.StatType]
	if !ok {
		return ConfigurationRequired
	}
	if b.Col == "" {
		return kind.label + ": Source Configuration Required"
	}

	name := b.Col
	if b.Col2 != "" {
		name += " vs. " + b.Col2
	}
	x := coercer.GetData(t, b.Col, table.Quantitative).Numbers
	var y []float64
	if kind.paired {
		y = coercer.GetData(t, b.Col2, table.Quantitative).Numbers
	}
	value := unavailable
	if v, ok := kind.compute(x, y); ok {
		value = descriptive.FormatNumber(v)
	}
	return kind.label + " of " + name + ": " + value
}
