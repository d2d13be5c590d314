package report

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal/analysis/intervals"
	"datareport/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statValue(t *testing.T, text, prefix string) float64 {
	t.Helper()
	require.True(t, strings.HasPrefix(text, prefix), text)
	v, err := strconv.ParseFloat(strings.TrimPrefix(text, prefix), 64)
	require.NoError(t, err)
	return v
}

func TestStatText(t *testing.T) {
	src := table.New([][]string{{"Name", "Age"}, {"John", "25"}, {"Jane", "26"}}, true)
	assert.Equal(t, "Mean of Age: 25.5", StatText(NewStatBlock("Mean", "Age", ""), src))
	assert.Equal(t, "Minimum of Age: 25", StatText(NewStatBlock("Min", "Age", ""), src))
	assert.Equal(t, "Maximum of Age: 26", StatText(NewStatBlock("Max", "Age", ""), src))
	assert.Equal(t, "Range of Age: 1", StatText(NewStatBlock("Range", "Age", ""), src))

	people := testkit.PeopleTable()
	sd := statValue(t, StatText(NewStatBlock("StDev", "Age", ""), people), "Standard Deviation of Age: ")
	assert.InDelta(t, 4.0824829, sd, 1e-6)

	r := statValue(t, StatText(NewStatBlock("Correlation Coefficient", "Age", "Height"), people),
		"Correlation Coefficient of Age vs. Height: ")
	assert.InDelta(t, 0.6546537, r, 1e-6)
	r2 := statValue(t, StatText(NewStatBlock("R-Squared", "Age", "Height"), people), "R-Squared of Age vs. Height: ")
	assert.InDelta(t, r*r, r2, 1e-12)
}

func TestStatTextConfiguration(t *testing.T) {
	people := testkit.PeopleTable()
	assert.Equal(t, ConfigurationRequired, StatText(NewStatBlock("Variance", "Age", ""), people))
	assert.Equal(t, "Median: Source Configuration Required", StatText(NewStatBlock("Median", "", ""), people))
	assert.Equal(t, "Mean of Name: NaN", StatText(NewStatBlock("Mean", "Name", ""), people))
	assert.Equal(t, "Mean of Weight: NaN", StatText(NewStatBlock("Mean", "Weight", ""), people))
	assert.Equal(t, "R-Squared of Age vs. Missing: null", StatText(NewStatBlock("R-Squared", "Age", "Missing"), people))
	assert.Equal(t, "Correlation Coefficient of Age vs. Missing: null",
		StatText(NewStatBlock("Correlation Coefficient", "Age", "Missing"), people))
	assert.Equal(t, "Correlation Coefficient of Age: null",
		StatText(NewStatBlock("Correlation Coefficient", "Age", ""), people))
	assert.Len(t, StatTypes(), len(statKinds))
}

func TestEvaluateBlock(t *testing.T) {
	people := testkit.PeopleTable()

	b := NewIntervalBlock(stats.OneSampleTInterval, "Age", "", 0.95)
	res := EvaluateBlock(people, b)
	require.NotNil(t, res.Interval)
	assert.True(t, res.Interval.Contains(30))
	assert.Equal(t, intervals.Text(0.95, stats.OneSampleTInterval, "Age", "", res.Interval), res.Text)
	assert.Equal(t, b.ID, res.ID)

	res = EvaluateBlock(people, NewIntervalBlock(stats.OneSampleTInterval, "", "", 0.95))
	assert.Nil(t, res.Interval)
	assert.Equal(t, intervals.ConfigurationRequired, res.Text)

	res = EvaluateBlock(people, NewTestBlock(stats.TestDescriptor{
		TestType: stats.OneSampleT,
		Col:      "Age",
		TestData: stats.TestData{Alpha: 0.05, Tails: stats.TwoSided, TestAgainst: "30", ShowConclusion: true},
	}))
	require.NotNil(t, res.Test)
	assert.InDelta(t, 0, res.Test.TestStatistic, 1e-12)
	assert.InDelta(t, 1, res.Test.PValue, 1e-12)
	assert.Contains(t, res.Text, "Test statistic = 0, p-value = 1")
	assert.Contains(t, res.Text, "fail to reject H0")

	res = EvaluateBlock(people, Block{ID: core.NewID(), Kind: "chart"})
	assert.Equal(t, ConfigurationRequired, res.Text)
}

func TestEvaluateKeepsBlockOrder(t *testing.T) {
	people := testkit.PeopleTable()
	var blocks []Block
	var want []string
	for i := 0; i < 40; i++ {
		st := StatTypes()[i%7]
		blocks = append(blocks, NewStatBlock(st, "Age", ""))
		want = append(want, StatText(blocks[i], people))
	}

	results, err := Evaluate(context.Background(), people, blocks, 3)
	require.NoError(t, err)
	require.Len(t, results, len(blocks))
	for i, r := range results {
		assert.Equal(t, blocks[i].ID, r.ID)
		assert.Equal(t, want[i], r.Text)
	}

	results, err = Evaluate(context.Background(), people, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Evaluate(ctx, testkit.PeopleTable(), []Block{NewStatBlock("Mean", "Age", "")}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBlockIDsAreUnique(t *testing.T) {
	seen := map[core.ID]bool{}
	for i := 0; i < 100; i++ {
		id := NewStatBlock("Mean", "Age", "").ID
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestJSONKeysAreCamelCase(t *testing.T) {
	b := NewTestBlock(stats.TestDescriptor{
		TestType: stats.OneSampleT,
		Col:      "Age",
		TestData: stats.TestData{Alpha: 0.05, Tails: stats.TwoSided, TestAgainst: "30", ShowConclusion: true},
	})
	res := EvaluateBlock(testkit.PeopleTable(), b)

	for _, v := range []interface{}{b, res, NewIntervalBlock(stats.OneSampleTInterval, "Age", "", 0.9)} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &fields))
		for _, key := range jsonKeys(fields) {
			assert.NotContains(t, key, "_", string(raw))
		}
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"testStatistic":`)
	assert.Contains(t, string(raw), `"pValue":`)

	raw, err = json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"testType":"1SampTTest"`)
	assert.Contains(t, string(raw), `"testAgainst":"30"`)
	assert.Contains(t, string(raw), `"showConclusion":true`)
}

func jsonKeys(m map[string]interface{}) []string {
	var keys []string
	for k, v := range m {
		keys = append(keys, k)
		if nested, ok := v.(map[string]interface{}); ok {
			keys = append(keys, jsonKeys(nested)...)
		}
	}
	return keys
}
