package stats

import (
	"math"
	"strings"
)

// ============================================================================
// STATISTICS
// ============================================================================

// Statistic names a descriptive statistic that can be applied to a column.
type Statistic int

const (
	Mean Statistic = iota
	Stdev
	Median
	Mode
	IQR
	Range
	Min
	Max
)

var statisticNames = [...]string{"mean", "stdev", "median", "mode", "iqr", "range", "min", "max"}

// Statistics lists every Statistic in declaration order.
func Statistics() []Statistic {
	return []Statistic{Mean, Stdev, Median, Mode, IQR, Range, Min, Max}
}

func (s Statistic) String() string {
	if s < 0 || int(s) >= len(statisticNames) {
		return "unknown"
	}
	return statisticNames[s]
}

// ParseStatistic maps a case-insensitive statistic name to its Statistic.
func ParseStatistic(name string) (Statistic, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range statisticNames {
		if n == name {
			return Statistic(i), true
		}
	}
	return 0, false
}

// ============================================================================
// HYPOTHESIS TESTS
// ============================================================================

// Tails is the direction of the alternative hypothesis.
type Tails string

const (
	TwoSided Tails = "two-sided"
	Less     Tails = "less"
	Greater  Tails = "greater"
)

// ParseTails validates a tails value.
func ParseTails(s string) (Tails, bool) {
	switch Tails(strings.ToLower(strings.TrimSpace(s))) {
	case TwoSided:
		return TwoSided, true
	case Less:
		return Less, true
	case Greater:
		return Greater, true
	}
	return "", false
}

// Symbol is the relation used when writing the alternative hypothesis.
func (t Tails) Symbol() string {
	norm, _ := ParseTails(string(t))
	switch norm {
	case Less:
		return "<"
	case Greater:
		return ">"
	default:
		return "≠"
	}
}

// TestType identifies which hypothesis test a descriptor runs.
type TestType string

const (
	ChiSquaredGOF          TestType = "X2GOFTest"
	ChiSquaredIndependence TestType = "X2IndTest"
	TwoSampleT             TestType = "2SampTTest"
	MatchedPairsT          TestType = "MPTTest"
	OneSampleT             TestType = "1SampTTest"
	TwoSampleZ             TestType = "2SampZTest"
	OneSampleZ             TestType = "1SampZTest"
	TwoSampleVariance      TestType = "2SampVarTest"
	OneWayANOVA            TestType = "ANOVATest"
	LinearRegression       TestType = "LinRegTest"
)

var testNames = map[TestType]string{
	ChiSquaredGOF:          "chi-squared goodness-of-fit test",
	ChiSquaredIndependence: "chi-squared test for independence",
	TwoSampleT:             "two-sample t-test for means",
	MatchedPairsT:          "matched pairs t-test",
	OneSampleT:             "one-sample t-test for a mean",
	TwoSampleZ:             "two-sample z-test for proportions",
	OneSampleZ:             "one-sample z-test for a proportion",
	TwoSampleVariance:      "two-sample F-test for variances",
	OneWayANOVA:            "one-way ANOVA",
	LinearRegression:       "linear regression F-test for slope",
}

// TestTypes lists every supported test.
func TestTypes() []TestType {
	return []TestType{
		ChiSquaredGOF, ChiSquaredIndependence, TwoSampleT, MatchedPairsT, OneSampleT,
		TwoSampleZ, OneSampleZ, TwoSampleVariance, OneWayANOVA, LinearRegression,
	}
}

// DisplayName is the lower-case human name of the test.
func (t TestType) DisplayName() string {
	if n, ok := testNames[t]; ok {
		return n
	}
	return string(t)
}

// ParseTestType accepts either the short identifier or the display name.
func ParseTestType(s string) (TestType, bool) {
	s = strings.TrimSpace(s)
	for tt, name := range testNames {
		if strings.EqualFold(string(tt), s) || strings.EqualFold(name, s) {
			return tt, true
		}
	}
	if strings.EqualFold(s, "LinearRegressionTest") {
		return LinearRegression, true
	}
	return "", false
}

// IsTTest reports whether the test is t-based (sample size cutoff of 30).
func (t TestType) IsTTest() bool {
	switch t {
	case TwoSampleT, MatchedPairsT, OneSampleT, LinearRegression:
		return true
	}
	return false
}

// IsZTest reports whether the test works on binary proportions.
func (t TestType) IsZTest() bool {
	return t == TwoSampleZ || t == OneSampleZ
}

// IsTwoSample reports whether the test reads a second column.
func (t TestType) IsTwoSample() bool {
	switch t {
	case TwoSampleT, MatchedPairsT, TwoSampleZ, TwoSampleVariance, LinearRegression:
		return true
	}
	return false
}

// TestData carries the parameters of a test.
type TestData struct {
	Alpha          float64  `json:"alpha"`
	Tails          Tails    `json:"tails"`
	H0             string   `json:"h0"`
	Ha             string   `json:"ha"`
	ExpCounts      []string `json:"expCounts,omitempty"`
	TestAgainst    string   `json:"testAgainst,omitempty"`
	Rand           bool     `json:"rand"`
	ShowConclusion bool     `json:"showConclusion"`
}

// TestDescriptor identifies a test, the columns it reads and its parameters.
// Columns selects the groups for ANOVA and chi-squared independence; when
// empty those tests read every column of the table.
type TestDescriptor struct {
	TestType TestType `json:"testType"`
	Col      string   `json:"col"`
	Col2     string   `json:"col2,omitempty"`
	Columns  []string `json:"columns,omitempty"`
	TestData TestData `json:"testData"`
}

// TestResult is the uniform result of every hypothesis test. Expected is only
// populated by the chi-squared independence test.
type TestResult struct {
	TestStatistic float64     `json:"testStatistic"`
	PValue        float64     `json:"pValue"`
	Expected      [][]float64 `json:"expected,omitempty"`
}

// Reject reports whether the p-value falls below alpha.
func (r TestResult) Reject(alpha float64) bool {
	return !math.IsNaN(r.PValue) && r.PValue < alpha
}

// ============================================================================
// INTERVALS
// ============================================================================

// IntervalType identifies a confidence interval procedure.
type IntervalType string

const (
	OneSampleTInterval   IntervalType = "1SampTInterval"
	TwoSampleTInterval   IntervalType = "2SampTInterval"
	OneSampleZInterval   IntervalType = "1SampZInterval"
	TwoSampleZInterval   IntervalType = "2SampZInterval"
	TwoSampleVarInterval IntervalType = "2SampVarInterval"
)

// ParseIntervalType validates an interval identifier (case-insensitive).
func ParseIntervalType(s string) (IntervalType, bool) {
	for _, it := range []IntervalType{OneSampleTInterval, TwoSampleTInterval, OneSampleZInterval, TwoSampleZInterval, TwoSampleVarInterval} {
		if strings.EqualFold(string(it), strings.TrimSpace(s)) {
			return it, true
		}
	}
	return "", false
}

// IsTwoSample reports whether the interval compares two columns.
func (i IntervalType) IsTwoSample() bool {
	return strings.Contains(string(i), "2Samp")
}

// Interval is a [lower, upper] confidence interval.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Tuple returns the bounds as a pair.
func (i Interval) Tuple() [2]float64 {
	return [2]float64{i.Lower, i.Upper}
}

// Contains reports whether v lies inside the closed interval.
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}
