// Package testkit holds the fixtures shared by package tests: small tables
// and sample sequences whose statistics are known in advance.
package testkit

import (
	"math/rand"
	"strconv"

	"datareport/domain/table"
)

// PeopleTable is a three-column table with a header row.
func PeopleTable() table.Table {
	return table.New([][]string{
		{"Name", "Age", "Height"},
		{"Alice", "25", "165"},
		{"Bob", "30", "180"},
		{"Charlie", "35", "175"},
	}, true)
}

// PassedTable is a binary column next to a label column.
func PassedTable() table.Table {
	return table.New([][]string{
		{"Name", "Passed"},
		{"Alice", "Yes"},
		{"Bob", "No"},
		{"Charlie", "Y"},
	}, true)
}

// CleaningLabels are the labels of CleaningRows.
func CleaningLabels() []string {
	return []string{"ID", "Value", "Category"}
}

// CleaningRows has one empty Value, one empty Category and a duplicated
// last row.
func CleaningRows() [][]string {
	return [][]string{
		{"1", "10", "A"},
		{"2", "", "B"},
		{"3", "20", ""},
		{"4", "15", "C"},
		{"4", "15", "C"},
	}
}

// Repeat returns label n times.
func Repeat(label string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = label
	}
	return out
}

// RepeatAll concatenates Repeat(labels[i], counts[i]) in order.
func RepeatAll(labels []string, counts []int) []string {
	var out []string
	for i, l := range labels {
		out = append(out, Repeat(l, counts[i])...)
	}
	return out
}

// GOFSample is raw categorical data with observed counts 30/25/20/15/25/35.
// Against six expected counts of 25 the statistic is 10 with p ≈ 0.0752.
func GOFSample() []string {
	return RepeatAll(
		[]string{"30", "25", "20", "15", "252", "35"},
		[]int{30, 25, 20, 15, 25, 35},
	)
}

// IndependenceSample is three categorical columns over A/B/C. Its
// chi-squared statistic is ≈ 4.2395 with p ≈ 0.3746.
func IndependenceSample() [][]string {
	abc := []string{"A", "B", "C"}
	return [][]string{
		RepeatAll(abc, []int{10, 20, 30}),
		RepeatAll(abc, []int{15, 25, 20}),
		RepeatAll(abc, []int{5, 10, 15}),
	}
}

// ColumnsToTable lays out equal-length columns under the given headers.
func ColumnsToTable(headers []string, columns [][]string) table.Table {
	rows := [][]string{append([]string(nil), headers...)}
	n := 0
	for _, c := range columns {
		if len(c) > n {
			n = len(c)
		}
	}
	for i := 0; i < n; i++ {
		row := make([]string, len(columns))
		for j, c := range columns {
			if i < len(c) {
				row[j] = c[i]
			}
		}
		rows = append(rows, row)
	}
	return table.New(rows, true)
}

// FormatFloats renders numbers as cells.
func FormatFloats(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return out
}

// NormalSample draws n deterministic values from N(mu, sigma).
func NormalSample(seed int64, n int, mu, sigma float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = mu + sigma*rng.NormFloat64()
	}
	return out
}
