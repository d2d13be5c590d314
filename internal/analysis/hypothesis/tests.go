// Package hypothesis runs the supported significance tests over extracted
// column data and renders their narrative write-up.
//
// Tests fail soft. Missing data, an invalid significance level or tail, and
// input the backend cannot handle all produce a nil *stats.TestResult instead
// of an error; backend panics are recovered at the boundary of each test.
package hypothesis

import (
	"math"

	"datareport/adapters/datareadiness/coercer"
	"datareport/domain/stats"
	"datareport/internal"
	"datareport/internal/analysis/distributions"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

func logger() *internal.Logger {
	return internal.DefaultLogger.With("hypothesis")
}

// guard converts a backend panic into a nil result.
func guard(tt stats.TestType, f func() *stats.TestResult) (res *stats.TestResult) {
	defer func() {
		if r := recover(); r != nil {
			logger().Debug("%s: recovered backend failure: %v", tt, r)
			res = nil
		}
	}()
	return f()
}

func validAlpha(alpha float64) bool {
	return !math.IsNaN(alpha) && alpha > 0 && alpha < 1
}

// normalizeTails maps any accepted spelling of tails onto its constant.
func normalizeTails(tails stats.Tails) (stats.Tails, bool) {
	return stats.ParseTails(string(tails))
}

type summary struct {
	n        float64
	mean     float64
	variance float64
}

func summarize(data []float64) (summary, bool) {
	if len(data) < 2 {
		return summary{}, false
	}
	m, err := mstats.Mean(data)
	if err != nil {
		return summary{}, false
	}
	v, err := mstats.SampleVariance(data)
	if err != nil {
		return summary{}, false
	}
	return summary{n: float64(len(data)), mean: m, variance: v}, true
}

// ChiSquaredGOF compares the observed counts of the distinct labels in data
// (first-seen order) with expected counts. Expected values are rescaled to
// the observed total, so proportions summing to 1 work as well as counts.
// The number of expected values must equal the number of distinct labels.
func ChiSquaredGOF(data []string, expCounts []string, alpha float64) *stats.TestResult {
	if data == nil || expCounts == nil || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.ChiSquaredGOF, func() *stats.TestResult {
		_, observed := coercer.Frequencies(data)
		expected, ok := scaleExpected(expCounts, len(data))
		if !ok || len(observed) != len(expected) || len(observed) < 2 {
			return nil
		}
		chi2 := 0.0
		for i, o := range observed {
			d := float64(o) - expected[i]
			chi2 += d * d / expected[i]
		}
		df := float64(len(observed) - 1)
		return &stats.TestResult{
			TestStatistic: chi2,
			PValue:        distributions.Default().ChiSquaredSurvival(chi2, df),
		}
	})
}

// scaleExpected parses expected counts and rescales them to total.
func scaleExpected(expCounts []string, total int) ([]float64, bool) {
	values := make([]float64, len(expCounts))
	sum := 0.0
	for i, s := range expCounts {
		v := coercer.ParseFloat(s)
		if math.IsNaN(v) || v <= 0 {
			return nil, false
		}
		values[i] = v
		sum += v
	}
	if sum == 0 {
		return nil, false
	}
	for i := range values {
		values[i] = values[i] / sum * float64(total)
	}
	return values, true
}

// ChiSquaredIndependence builds a contingency table with one row per column
// of data and one column per distinct category across all of data, and tests
// the rows for independence. A 2x2 table gets Yates' continuity correction.
// The result carries the expected cell counts.
func ChiSquaredIndependence(data [][]string, alpha float64) *stats.TestResult {
	if data == nil || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.ChiSquaredIndependence, func() *stats.TestResult {
		observed, expected, ok := contingency(data)
		if !ok {
			return nil
		}
		r, c := len(observed), len(observed[0])
		yates := r == 2 && c == 2
		chi2 := 0.0
		for i := range observed {
			for j := range observed[i] {
				d := math.Abs(observed[i][j] - expected[i][j])
				if yates {
					d = math.Max(0, d-0.5)
				}
				chi2 += d * d / expected[i][j]
			}
		}
		df := float64((r - 1) * (c - 1))
		return &stats.TestResult{
			TestStatistic: chi2,
			PValue:        distributions.Default().ChiSquaredSurvival(chi2, df),
			Expected:      expected,
		}
	})
}

// contingency returns observed and expected counts. It reports false when the
// table is smaller than 2x2 or a row is empty.
func contingency(data [][]string) (observed, expected [][]float64, ok bool) {
	categories := coercer.UniqueFromMatrix(data)
	if len(data) < 2 || len(categories) < 2 {
		return nil, nil, false
	}
	observed = make([][]float64, len(data))
	rowTotals := make([]float64, len(data))
	colTotals := make([]float64, len(categories))
	grand := 0.0
	for i, col := range data {
		counts := coercer.CountsAgainst(col, categories)
		observed[i] = make([]float64, len(categories))
		for j, n := range counts {
			observed[i][j] = float64(n)
			rowTotals[i] += float64(n)
			colTotals[j] += float64(n)
		}
		if rowTotals[i] == 0 {
			return nil, nil, false
		}
		grand += rowTotals[i]
	}
	expected = make([][]float64, len(data))
	for i := range expected {
		expected[i] = make([]float64, len(categories))
		for j := range expected[i] {
			expected[i][j] = rowTotals[i] * colTotals[j] / grand
		}
	}
	return observed, expected, true
}

// TwoSampleT is Welch's t-test for the difference of two means.
func TwoSampleT(data, data2 []float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.TwoSampleT, func() *stats.TestResult {
		s1, ok1 := summarize(data)
		s2, ok2 := summarize(data2)
		if !ok1 || !ok2 {
			return nil
		}
		a, b := s1.variance/s1.n, s2.variance/s2.n
		se := math.Sqrt(a + b)
		df := (a + b) * (a + b) / (a*a/(s1.n-1) + b*b/(s2.n-1))
		return tResult((s1.mean-s2.mean)/se, df, tails)
	})
}

// MatchedPairsT is the one-sample t-test on the pairwise differences
// data[i] - data2[i]. Both samples must have the same length.
func MatchedPairsT(data, data2 []float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	if len(data) != len(data2) {
		return nil
	}
	diffs := make([]float64, len(data))
	for i := range data {
		diffs[i] = data[i] - data2[i]
	}
	return guard(stats.MatchedPairsT, func() *stats.TestResult {
		return oneSampleT(diffs, 0, tails)
	})
}

// OneSampleT tests a mean against testAgainst.
func OneSampleT(data []float64, testAgainst float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || math.IsNaN(testAgainst) || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.OneSampleT, func() *stats.TestResult {
		return oneSampleT(data, testAgainst, tails)
	})
}

func oneSampleT(data []float64, mu float64, tails stats.Tails) *stats.TestResult {
	s, ok := summarize(data)
	if !ok {
		return nil
	}
	t := (s.mean - mu) / math.Sqrt(s.variance/s.n)
	return tResult(t, s.n-1, tails)
}

func tResult(t, df float64, tails stats.Tails) *stats.TestResult {
	b := distributions.Default()
	return &stats.TestResult{TestStatistic: t, PValue: b.TailPValue(b.TCDF(t, df), tails)}
}

// TwoSampleZ compares two means (proportions for binary data) with the
// sample standard deviations standing in for the population ones.
func TwoSampleZ(data, data2 []float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.TwoSampleZ, func() *stats.TestResult {
		s1, ok1 := summarize(data)
		s2, ok2 := summarize(data2)
		if !ok1 || !ok2 {
			return nil
		}
		z := (s1.mean - s2.mean) / math.Sqrt(s1.variance/s1.n+s2.variance/s2.n)
		return zResult(z, tails)
	})
}

// OneSampleZ tests a mean (a proportion for binary data) against
// testAgainst using the sample standard deviation.
func OneSampleZ(data []float64, testAgainst float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || math.IsNaN(testAgainst) || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.OneSampleZ, func() *stats.TestResult {
		s, ok := summarize(data)
		if !ok {
			return nil
		}
		return zResult((s.mean-testAgainst)/math.Sqrt(s.variance/s.n), tails)
	})
}

func zResult(z float64, tails stats.Tails) *stats.TestResult {
	b := distributions.Default()
	return &stats.TestResult{TestStatistic: z, PValue: b.TailPValue(b.NormalCDF(z), tails)}
}

// TwoSampleVariance is the F-test on the ratio of sample variances
// s1²/s2² with (n1-1, n2-1) degrees of freedom.
func TwoSampleVariance(data, data2 []float64, tails stats.Tails, alpha float64) *stats.TestResult {
	tails, ok := normalizeTails(tails)
	if !ok || data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard(stats.TwoSampleVariance, func() *stats.TestResult {
		s1, ok1 := summarize(data)
		s2, ok2 := summarize(data2)
		if !ok1 || !ok2 {
			return nil
		}
		f := s1.variance / s2.variance
		b := distributions.Default()
		return &stats.TestResult{
			TestStatistic: f,
			PValue:        b.TailPValue(b.FCDF(f, s1.n-1, s2.n-1), tails),
		}
	})
}

// OneWayANOVA compares the means of two or more groups. F is the ratio of
// the between-group to the within-group mean square.
func OneWayANOVA(groups [][]float64) *stats.TestResult {
	if len(groups) < 2 {
		return nil
	}
	return guard(stats.OneWayANOVA, func() *stats.TestResult {
		k := float64(len(groups))
		var all []float64
		for _, g := range groups {
			if len(g) == 0 {
				return nil
			}
			all = append(all, g...)
		}
		n := float64(len(all))
		if n <= k {
			return nil
		}
		grand := stat.Mean(all, nil)
		var ssb, ssw float64
		for _, g := range groups {
			m := stat.Mean(g, nil)
			ssb += float64(len(g)) * (m - grand) * (m - grand)
			for _, v := range g {
				ssw += (v - m) * (v - m)
			}
		}
		f := (ssb / (k - 1)) / (ssw / (n - k))
		return &stats.TestResult{
			TestStatistic: f,
			PValue:        distributions.Default().FSurvival(f, k-1, n-k),
		}
	})
}

// LinearRegression tests the slope of the least-squares line of y on x with
// F = SSR / (SSE / (n-2)) on (1, n-2) degrees of freedom.
func LinearRegression(x, y []float64) *stats.TestResult {
	if x == nil || y == nil || len(x) != len(y) || len(x) < 3 {
		return nil
	}
	return guard(stats.LinearRegression, func() *stats.TestResult {
		intercept, slope := stat.LinearRegression(x, y, nil, false)
		my := stat.Mean(y, nil)
		var ssr, sse float64
		for i, xi := range x {
			fit := intercept + slope*xi
			ssr += (fit - my) * (fit - my)
			sse += (y[i] - fit) * (y[i] - fit)
		}
		df := float64(len(x) - 2)
		f := ssr / (sse / df)
		return &stats.TestResult{
			TestStatistic: f,
			PValue:        distributions.Default().FSurvival(f, 1, df),
		}
	})
}
