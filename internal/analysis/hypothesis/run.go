package hypothesis

import (
	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/stats"
	"datareport/domain/table"
)

// DeclaredTypeFor is the coercion a test applies when extracting its
// columns: t-based, variance, ANOVA and regression tests read numbers,
// z-tests read binary indicators and chi-squared tests read raw labels.
func DeclaredTypeFor(tt stats.TestType) table.DeclaredType {
	switch tt {
	case stats.TwoSampleZ, stats.OneSampleZ:
		return table.Binary
	case stats.ChiSquaredGOF, stats.ChiSquaredIndependence:
		return table.Categorical
	}
	return table.Quantitative
}

// Run extracts the columns a descriptor names from t and runs the test.
//
// Chi-squared independence and ANOVA read the descriptor's Columns, or every
// column of the table when none are selected. The other tests read Col (and
// Col2 when they need two samples); an unresolvable column yields nil.
func Run(t table.Table, d stats.TestDescriptor) *stats.TestResult {
	typ := DeclaredTypeFor(d.TestType)
	td := d.TestData

	switch d.TestType {
	case stats.ChiSquaredIndependence:
		cols := groups(t, d.Columns, typ)
		data := make([][]string, len(cols))
		for i, c := range cols {
			data[i] = c.Labels
		}
		return ChiSquaredIndependence(data, td.Alpha)
	case stats.OneWayANOVA:
		cols := groups(t, d.Columns, typ)
		data := make([][]float64, len(cols))
		for i, c := range cols {
			data[i] = c.Numbers
		}
		return OneWayANOVA(data)
	}

	col, ok := column(t, d.Col, typ)
	if !ok {
		return nil
	}
	var col2 coercer.Column
	if d.TestType.IsTwoSample() {
		if col2, ok = column(t, d.Col2, typ); !ok {
			return nil
		}
	}
	testAgainst := coercer.ParseFloat(td.TestAgainst)

	switch d.TestType {
	case stats.ChiSquaredGOF:
		return ChiSquaredGOF(col.Labels, td.ExpCounts, td.Alpha)
	case stats.TwoSampleT:
		return TwoSampleT(col.Numbers, col2.Numbers, td.Tails, td.Alpha)
	case stats.MatchedPairsT:
		return MatchedPairsT(col.Numbers, col2.Numbers, td.Tails, td.Alpha)
	case stats.OneSampleT:
		return OneSampleT(col.Numbers, testAgainst, td.Tails, td.Alpha)
	case stats.TwoSampleZ:
		return TwoSampleZ(col.Numbers, col2.Numbers, td.Tails, td.Alpha)
	case stats.OneSampleZ:
		return OneSampleZ(col.Numbers, testAgainst, td.Tails, td.Alpha)
	case stats.TwoSampleVariance:
		return TwoSampleVariance(col.Numbers, col2.Numbers, td.Tails, td.Alpha)
	case stats.LinearRegression:
		return LinearRegression(col.Numbers, col2.Numbers)
	}
	logger().Trace("unknown test type %q", d.TestType)
	return nil
}

func column(t table.Table, selector string, typ table.DeclaredType) (coercer.Column, bool) {
	if coercer.ResolveColumn(t, selector) < 0 {
		logger().Trace("column %q does not resolve", selector)
		return coercer.Column{}, false
	}
	return coercer.GetData(t, selector, typ), true
}

func groups(t table.Table, selectors []string, typ table.DeclaredType) []coercer.Column {
	if len(selectors) == 0 {
		return coercer.GetFullData(t, typ)
	}
	return coercer.GetColumns(t, selectors, typ)
}
