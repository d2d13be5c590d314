package intervals

import (
	"math"
	"testing"

	"datareport/domain/stats"
	"datareport/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	oneToFive = []float64{1, 2, 3, 4, 5}
	twoToSix  = []float64{2, 3, 4, 5, 6}
)

func TestOneSampleT(t *testing.T) {
	iv := OneSampleT(oneToFive, 0.05)
	require.NotNil(t, iv)
	assert.InDelta(t, 1.036757, iv.Lower, 1e-5)
	assert.InDelta(t, 4.963243, iv.Upper, 1e-5)
}

func TestOneSampleZ(t *testing.T) {
	iv := OneSampleZ(oneToFive, 0.05)
	require.NotNil(t, iv)
	assert.InDelta(t, 1.6141, iv.Lower, 1e-4)
	assert.InDelta(t, 4.3859, iv.Upper, 1e-4)
}

func TestTwoSampleT(t *testing.T) {
	iv := TwoSampleT(oneToFive, twoToSix, 0.05)
	require.NotNil(t, iv)
	assert.InDelta(t, -3.306004, iv.Lower, 1e-5)
	assert.InDelta(t, 1.306004, iv.Upper, 1e-5)
}

func TestTwoSampleZ(t *testing.T) {
	iv := TwoSampleZ(oneToFive, twoToSix, 0.05)
	require.NotNil(t, iv)
	assert.InDelta(t, -2.959964, iv.Lower, 1e-5)
	assert.InDelta(t, 0.959964, iv.Upper, 1e-5)
}

func TestTwoSampleVariance(t *testing.T) {
	iv := TwoSampleVariance(oneToFive, twoToSix, 0.05)
	require.NotNil(t, iv)
	assert.InDelta(t, 0.1041175, iv.Lower, 1e-5)
	assert.InDelta(t, 9.60453, iv.Upper, 1e-4)
}

func TestIntervalsFailClosed(t *testing.T) {
	assert.Nil(t, OneSampleT(nil, 0.05))
	assert.Nil(t, OneSampleT(oneToFive, math.NaN()))
	assert.Nil(t, OneSampleT(oneToFive, 0))
	assert.Nil(t, OneSampleT(oneToFive, 1))
	assert.Nil(t, OneSampleT([]float64{4}, 0.05))
	assert.Nil(t, OneSampleZ([]float64{}, 0.05))
	assert.Nil(t, TwoSampleT(oneToFive, nil, 0.05))
	assert.Nil(t, TwoSampleZ(nil, twoToSix, 0.05))
	assert.Nil(t, TwoSampleVariance(oneToFive, []float64{1}, 0.05))
}

func TestWiderConfidenceGivesWiderInterval(t *testing.T) {
	data := testkit.NormalSample(7, 40, 10, 2)
	narrow := OneSampleT(data, 0.10)
	wide := OneSampleT(data, 0.01)
	require.NotNil(t, narrow)
	require.NotNil(t, wide)
	assert.Less(t, wide.Lower, narrow.Lower)
	assert.Greater(t, wide.Upper, narrow.Upper)
	assert.True(t, wide.Contains(narrow.Lower))
}

func TestCompute(t *testing.T) {
	iv := Compute(stats.OneSampleTInterval, oneToFive, nil, 0.95)
	require.NotNil(t, iv)
	assert.InDelta(t, 1.036757, iv.Lower, 1e-5)

	assert.Nil(t, Compute(stats.TwoSampleTInterval, oneToFive, nil, 0.95))
	assert.Nil(t, Compute(stats.IntervalType("3SampInterval"), oneToFive, twoToSix, 0.95))
	assert.NotNil(t, Compute(stats.TwoSampleVarInterval, oneToFive, twoToSix, 0.9))
}

func TestText(t *testing.T) {
	iv := &stats.Interval{Lower: 1.5, Upper: 4}
	assert.Equal(t,
		"95% confidence interval for the mean of Age: [1.5, 4]",
		Text(0.95, stats.OneSampleTInterval, "Age", "Height", iv))
	assert.Equal(t,
		"90% confidence interval for the difference between means of Age and Height: [1.5, 4]",
		Text(0.9, stats.TwoSampleTInterval, "Age", "Height", iv))
	assert.Equal(t,
		"99% confidence interval for the ratio of variances of A and B: [1.5, 4]",
		Text(0.99, stats.TwoSampleVarInterval, "A", "B", iv))

	assert.Equal(t, ConfigurationRequired, Text(0.95, stats.OneSampleTInterval, "", "", iv))
	assert.Equal(t, ConfigurationRequired, Text(0.95, stats.OneSampleTInterval, "Age", "", nil))
	assert.Equal(t, ConfigurationRequired, Text(math.NaN(), stats.OneSampleTInterval, "Age", "", iv))
	assert.Equal(t, ConfigurationRequired, Text(0.95, stats.IntervalType("bogus"), "Age", "", iv))
}

func TestParameterAndColumnNames(t *testing.T) {
	assert.Equal(t, "proportion of", Parameter(stats.OneSampleZInterval))
	assert.Equal(t, "difference between proportions of", Parameter(stats.TwoSampleZInterval))
	assert.Equal(t, "", Parameter(stats.IntervalType("x")))
	assert.Equal(t, "Age", ColumnNames("Age", ""))
	assert.Equal(t, "Age and Height", ColumnNames("Age", "Height"))
}

func TestFromTable(t *testing.T) {
	tbl := testkit.ColumnsToTable(
		[]string{"x", "y", "passed"},
		[][]string{
			testkit.FormatFloats(oneToFive),
			testkit.FormatFloats(twoToSix),
			{"yes", "no", "yes", "yes", "no"},
		})

	iv := FromTable(tbl, stats.TwoSampleTInterval, "x", "y", 0.95)
	require.NotNil(t, iv)
	assert.InDelta(t, -3.306004, iv.Lower, 1e-5)

	iv = FromTable(tbl, stats.OneSampleZInterval, "passed", "", 0.95)
	require.NotNil(t, iv)
	assert.True(t, iv.Contains(0.6))

	assert.Nil(t, FromTable(tbl, stats.OneSampleTInterval, "missing", "", 0.95))
	assert.Nil(t, FromTable(tbl, stats.TwoSampleTInterval, "x", "missing", 0.95))
}
