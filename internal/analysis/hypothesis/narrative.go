package hypothesis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"datareport/domain/stats"
	"datareport/internal/analysis/descriptive"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title renders a test or column name in title case.
func Title(s string) string {
	return titleCaser.String(s)
}

// Narrate writes up a test: its name, the hypotheses, the assumption checks,
// the result and, when the descriptor asks for it, a conclusion comparing the
// p-value with alpha. A nil result is reported as not computable.
func Narrate(d stats.TestDescriptor, res *stats.TestResult, ev Evidence) string {
	td := d.TestData
	cols := ev.columnNames()
	if len(cols) == 0 {
		cols = []string{d.Col}
		if d.Col2 != "" {
			cols = append(cols, d.Col2)
		}
	}

	var b strings.Builder
	b.WriteString(Title(d.TestType.DisplayName()))
	b.WriteString("\n\n")

	h0, ha := hypotheses(d, cols)
	fmt.Fprintf(&b, "H0: %s\nHa: %s\n\n", h0, ha)

	b.WriteString("Conditions\n")
	if td.Rand {
		b.WriteString("Random: the data come from a random sample.\n")
	} else {
		b.WriteString("Random: the data are not known to come from a random sample, so results may not generalize.\n")
	}
	for _, line := range largeCounts(d.TestType, ev) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if res == nil {
		b.WriteString("The test could not be computed from the selected data.")
		return b.String()
	}
	fmt.Fprintf(&b, "Test statistic = %s, p-value = %s",
		short(res.TestStatistic), short(res.PValue))

	if td.ShowConclusion {
		b.WriteString("\n\n")
		b.WriteString(conclusion(res.PValue, td.Alpha, ha))
	}
	return b.String()
}

func conclusion(p, alpha float64, ha string) string {
	ps, as := short(p), descriptive.FormatNumber(alpha)
	if (stats.TestResult{PValue: p}).Reject(alpha) {
		return fmt.Sprintf("Because the p-value (%s) is less than alpha (%s), we reject H0. "+
			"There is convincing evidence that %s.", ps, as, ha)
	}
	return fmt.Sprintf("Because the p-value (%s) is not less than alpha (%s), we fail to reject H0. "+
		"There is not convincing evidence that %s.", ps, as, ha)
}

// hypotheses returns the descriptor's hypotheses, filling in a standard
// statement for the test when one is blank.
func hypotheses(d stats.TestDescriptor, cols []string) (h0, ha string) {
	h0, ha = d.TestData.H0, d.TestData.Ha
	if h0 != "" && ha != "" {
		return h0, ha
	}
	first, second := colAt(cols, 0), colAt(cols, 1)
	rel := d.TestData.Tails.Symbol()
	against := d.TestData.TestAgainst

	var dh0, dha string
	switch d.TestType {
	case stats.ChiSquaredGOF:
		dh0 = "the distribution of " + first + " matches the expected counts"
		dha = "the distribution of " + first + " does not match the expected counts"
	case stats.ChiSquaredIndependence:
		joined := strings.Join(cols, ", ")
		dh0 = "there is no association between " + joined
		dha = "there is an association between " + joined
	case stats.TwoSampleT:
		dh0 = fmt.Sprintf("μ(%s) = μ(%s)", first, second)
		dha = fmt.Sprintf("μ(%s) %s μ(%s)", first, rel, second)
	case stats.MatchedPairsT:
		dh0 = fmt.Sprintf("μ(%s - %s) = 0", first, second)
		dha = fmt.Sprintf("μ(%s - %s) %s 0", first, second, rel)
	case stats.OneSampleT:
		dh0 = fmt.Sprintf("μ(%s) = %s", first, against)
		dha = fmt.Sprintf("μ(%s) %s %s", first, rel, against)
	case stats.TwoSampleZ:
		dh0 = fmt.Sprintf("p(%s) = p(%s)", first, second)
		dha = fmt.Sprintf("p(%s) %s p(%s)", first, rel, second)
	case stats.OneSampleZ:
		dh0 = fmt.Sprintf("p(%s) = %s", first, against)
		dha = fmt.Sprintf("p(%s) %s %s", first, rel, against)
	case stats.TwoSampleVariance:
		dh0 = fmt.Sprintf("σ²(%s) = σ²(%s)", first, second)
		dha = fmt.Sprintf("σ²(%s) %s σ²(%s)", first, rel, second)
	case stats.OneWayANOVA:
		dh0 = "the means of " + strings.Join(cols, ", ") + " are all equal"
		dha = "at least one mean of " + strings.Join(cols, ", ") + " differs"
	case stats.LinearRegression:
		dh0 = fmt.Sprintf("the slope of %s on %s is 0", second, first)
		dha = fmt.Sprintf("the slope of %s on %s is not 0", second, first)
	}
	if h0 == "" {
		h0 = dh0
	}
	if ha == "" {
		ha = dha
	}
	return h0, ha
}

// largeCounts renders the sample-size conditions: n >= 30 per sample for
// t-based tests, at least 10 successes and failures per sample for z-tests
// and expected counts of at least 5 for chi-squared tests.
func largeCounts(tt stats.TestType, ev Evidence) []string {
	var lines []string
	switch {
	case tt.IsTTest():
		for _, s := range ev.Samples {
			if s.Size >= MinTSampleSize {
				lines = append(lines, fmt.Sprintf("Large Counts: n = %d ≥ %d for %s.", s.Size, MinTSampleSize, s.Column))
			} else {
				lines = append(lines, fmt.Sprintf("Large Counts: n = %d < %d for %s; the population should be approximately normal.", s.Size, MinTSampleSize, s.Column))
			}
		}
	case tt.IsZTest():
		for _, s := range ev.Samples {
			if s.Successes >= MinBinaryCount && s.Failures >= MinBinaryCount {
				lines = append(lines, fmt.Sprintf("Large Counts: %s has %d successes and %d failures, both at least %d.",
					s.Column, s.Successes, s.Failures, MinBinaryCount))
			} else {
				lines = append(lines, fmt.Sprintf("Large Counts: %s has %d successes and %d failures; both should be at least %d.",
					s.Column, s.Successes, s.Failures, MinBinaryCount))
			}
		}
	case tt == stats.ChiSquaredGOF || tt == stats.ChiSquaredIndependence:
		low, ok := ev.minExpected()
		if !ok {
			break
		}
		if low >= MinExpectedCount {
			lines = append(lines, fmt.Sprintf("Large Counts: all expected counts are at least %s.", descriptive.FormatNumber(MinExpectedCount)))
		} else {
			lines = append(lines, fmt.Sprintf("Large Counts: the smallest expected count is %s, below %s.", short(low), descriptive.FormatNumber(MinExpectedCount)))
		}
	}
	return lines
}

func colAt(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}

// short renders a statistic with four significant digits.
func short(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return descriptive.FormatNumber(v)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
