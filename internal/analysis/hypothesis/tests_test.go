package hypothesis

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
	sixOf25   = []string{"25", "25", "25", "25", "25", "25"}
)

func TestChiSquaredGOF(t *testing.T) {
	res := ChiSquaredGOF(testkit.GOFSample(), sixOf25, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 10, res.TestStatistic, 1e-9)
	assert.InDelta(t, 0.07524, res.PValue, 1e-5)
	assert.Nil(t, res.Expected)
}

func TestChiSquaredGOFAcceptsProportions(t *testing.T) {
	sixths := []string{"0.5", "0.5", "0.5", "0.5", "0.5", "0.5"}
	res := ChiSquaredGOF(testkit.GOFSample(), sixths, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 10, res.TestStatistic, 1e-9)
}

func TestChiSquaredGOFCategoryMismatch(t *testing.T) {
	assert.Nil(t, ChiSquaredGOF(testkit.GOFSample(), sixOf25[:5], 0.05))
	assert.Nil(t, ChiSquaredGOF(testkit.GOFSample(), nil, 0.05))
	assert.Nil(t, ChiSquaredGOF(nil, sixOf25, 0.05))
	assert.Nil(t, ChiSquaredGOF(testkit.GOFSample(), []string{"25", "x", "25", "25", "25", "25"}, 0.05))
	assert.Nil(t, ChiSquaredGOF(testkit.GOFSample(), sixOf25, math.NaN()))
}

func TestChiSquaredIndependence(t *testing.T) {
	res := ChiSquaredIndependence(testkit.IndependenceSample(), 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 4.2395, res.TestStatistic, 1e-4)
	assert.InDelta(t, 0.3746, res.PValue, 1e-4)

	require.Len(t, res.Expected, 3)
	// row totals 60/60/30, category totals A=30 B=55 C=65, grand total 150
	assert.InDelta(t, 12, res.Expected[0][0], 1e-12)
	assert.InDelta(t, 22, res.Expected[1][1], 1e-12)
	assert.InDelta(t, 13, res.Expected[2][2], 1e-12)
}

func TestChiSquaredIndependenceYates(t *testing.T) {
	data := [][]string{
		testkit.RepeatAll([]string{"A", "B"}, []int{20, 10}),
		testkit.RepeatAll([]string{"A", "B"}, []int{10, 20}),
	}
	res := ChiSquaredIndependence(data, 0.05)
	require.NotNil(t, res)
	// uncorrected statistic is 6.667; |o - e| = 5 becomes 4.5
	assert.InDelta(t, 4*4.5*4.5/15, res.TestStatistic, 1e-9)
}

func TestChiSquaredIndependenceDegenerate(t *testing.T) {
	assert.Nil(t, ChiSquaredIndependence(nil, 0.05))
	assert.Nil(t, ChiSquaredIndependence([][]string{{"A", "B"}}, 0.05))
	assert.Nil(t, ChiSquaredIndependence([][]string{{"A", "A"}, {"A"}}, 0.05))
	assert.Nil(t, ChiSquaredIndependence([][]string{{"A", "B"}, {}}, 0.05))
}

func TestTwoSampleVariance(t *testing.T) {
	res := TwoSampleVariance(oneToFive, twoToSix, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 1, res.TestStatistic, 1e-12)
	assert.InDelta(t, 1, res.PValue, 1e-3)
}

func TestTwoSampleT(t *testing.T) {
	res := TwoSampleT(oneToFive, twoToSix, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, -1, res.TestStatistic, 1e-12)
	assert.InDelta(t, 0.3466, res.PValue, 1e-4)

	less := TwoSampleT(oneToFive, twoToSix, stats.Less, 0.05)
	greater := TwoSampleT(oneToFive, twoToSix, stats.Greater, 0.05)
	require.NotNil(t, less)
	require.NotNil(t, greater)
	assert.InDelta(t, res.PValue/2, less.PValue, 1e-12)
	assert.InDelta(t, 1, less.PValue+greater.PValue, 1e-12)
}

func TestMatchedPairsT(t *testing.T) {
	res := MatchedPairsT(oneToFive, []float64{2, 5, 4, 7, 9}, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, -4, res.TestStatistic, 1e-9)
	assert.InDelta(t, 0.01613, res.PValue, 1e-4)

	assert.Nil(t, MatchedPairsT(oneToFive, twoToSix[:4], stats.TwoSided, 0.05))
}

func TestOneSampleT(t *testing.T) {
	res := OneSampleT(oneToFive, 0, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 0.01324, res.PValue, 1e-4)

	assert.Nil(t, OneSampleT(oneToFive, math.NaN(), stats.TwoSided, 0.05))
	assert.Nil(t, OneSampleT(oneToFive, 0, stats.Tails("sideways"), 0.05))
	assert.Nil(t, OneSampleT([]float64{3}, 0, stats.TwoSided, 0.05))
}

func TestTwoSampleZ(t *testing.T) {
	res := TwoSampleZ(oneToFive, twoToSix, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, -1, res.TestStatistic, 1e-12)
	assert.InDelta(t, 0.3173, res.PValue, 1e-4)
}

func TestOneSampleZ(t *testing.T) {
	res := OneSampleZ(oneToFive, 0, stats.TwoSided, 0.05)
	require.NotNil(t, res)
	assert.InDelta(t, 0.00002209, res.PValue, 1e-7)
}

func TestOneWayANOVA(t *testing.T) {
	res := OneWayANOVA([][]float64{oneToFive, twoToSix})
	require.NotNil(t, res)
	assert.InDelta(t, 1, res.TestStatistic, 1e-12)
	assert.InDelta(t, 0.3465, res.PValue, 1e-3)

	assert.Nil(t, OneWayANOVA([][]float64{oneToFive}))
	assert.Nil(t, OneWayANOVA([][]float64{oneToFive, {}}))
	assert.Nil(t, OneWayANOVA([][]float64{{1}, {2}}))
}

func TestLinearRegression(t *testing.T) {
	res := LinearRegression(oneToFive, []float64{2, 30, 4, 50, 6})
	require.NotNil(t, res)
	assert.InDelta(t, 0.1396, res.TestStatistic, 1e-4)
	assert.InDelta(t, 0.7335, res.PValue, 1e-3)

	assert.Nil(t, LinearRegression(oneToFive, twoToSix[:3]))
	assert.Nil(t, LinearRegression([]float64{1, 2}, []float64{1, 2}))
	assert.Nil(t, LinearRegression(nil, nil))
}

func TestPValuesAreProbabilities(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		x := testkit.NormalSample(seed, 20, 5, 2)
		y := testkit.NormalSample(seed+50, 25, 5.5, 3)
		for _, tails := range []stats.Tails{stats.TwoSided, stats.Less, stats.Greater} {
			for _, res := range []*stats.TestResult{
				TwoSampleT(x, y, tails, 0.05),
				OneSampleT(x, 5, tails, 0.05),
				TwoSampleZ(x, y, tails, 0.05),
				TwoSampleVariance(x, y, tails, 0.05),
			} {
				require.NotNil(t, res)
				assert.GreaterOrEqual(t, res.PValue, 0.0)
				assert.LessOrEqual(t, res.PValue, 1.0)
			}
		}
	}
}

func TestTailsSpellingIsNormalized(t *testing.T) {
	greater := OneSampleT(oneToFive, 0, stats.Greater, 0.05)
	require.NotNil(t, greater)
	assert.InDelta(t, 0.006618, greater.PValue, 1e-5)

	for _, spelling := range []stats.Tails{"Greater", "GREATER", " greater "} {
		res := OneSampleT(oneToFive, 0, spelling, 0.05)
		require.NotNil(t, res, "tails %q", spelling)
		assert.Equal(t, greater.PValue, res.PValue, "tails %q", spelling)
	}

	less := TwoSampleZ(oneToFive, twoToSix, stats.Less, 0.05)
	padded := TwoSampleZ(oneToFive, twoToSix, " LESS ", 0.05)
	require.NotNil(t, less)
	require.NotNil(t, padded)
	assert.Equal(t, less.PValue, padded.PValue)
	assert.Less(t, padded.PValue, 0.5)

	assert.Nil(t, OneSampleT(oneToFive, 0, "both", 0.05))
}
