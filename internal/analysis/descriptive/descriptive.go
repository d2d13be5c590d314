// Package descriptive implements the summary statistics shown in reports and
// used by the cleaning pipeline.
//
// Every function takes a plain []float64 and never fails: degenerate input
// (an empty list, a single value where a spread is needed) yields NaN, and NaN
// values inside the list propagate through the arithmetic. Callers that want
// to ignore unparsable cells filter them out first.
package descriptive

import (
	"math"
	"sort"

	"datareport/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Mean is the arithmetic average.
func Mean(list []float64) float64 {
	m, err := mstats.Mean(list)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Std is the population standard deviation (divides by n).
func Std(list []float64) float64 {
	sd, err := mstats.StandardDeviationPopulation(list)
	if err != nil {
		return math.NaN()
	}
	return sd
}

// Median sorts a copy; an even length averages the two central values.
func Median(list []float64) float64 {
	m, err := mstats.Median(list)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Mode returns the most frequent value. Among values with the same count the
// one that occurs first in list wins.
func Mode(list []float64) float64 {
	if len(list) == 0 {
		return math.NaN()
	}
	counts := make(map[float64]int, len(list))
	order := make([]float64, 0, len(list))
	nanCount := 0
	for _, v := range list {
		if math.IsNaN(v) {
			// NaN never equals itself, so it cannot be a map key.
			if nanCount == 0 {
				order = append(order, v)
			}
			nanCount++
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	best, bestCount := order[0], -1
	for _, v := range order {
		c := nanCount
		if !math.IsNaN(v) {
			c = counts[v]
		}
		if c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

// Min is a linear scan starting from the first element.
func Min(list []float64) float64 {
	m, err := mstats.Min(list)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Max is a linear scan starting from the first element.
func Max(list []float64) float64 {
	m, err := mstats.Max(list)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Range is Max - Min.
func Range(list []float64) float64 {
	return Max(list) - Min(list)
}

// IQR is Q3 - Q1 where Q1 is the median of the lower floor(n/2) sorted values
// and Q3 the median of the values from ceil(n/2) on. For odd n the middle
// value belongs to neither half. Lists shorter than 2 yield NaN.
func IQR(list []float64) float64 {
	n := len(list)
	if n < 2 {
		return math.NaN()
	}
	values := sortedCopy(list)
	q1 := Median(values[:n/2])
	q3 := Median(values[(n+1)/2:])
	return q3 - q1
}

// CorrelationCoefficient is Pearson's r. It reports false when the lists
// differ in length.
func CorrelationCoefficient(list1, list2 []float64) (float64, bool) {
	if len(list1) != len(list2) {
		return 0, false
	}
	if len(list1) == 0 {
		return math.NaN(), true
	}
	return stat.Correlation(list1, list2, nil), true
}

// RSquared is the square of CorrelationCoefficient.
func RSquared(list1, list2 []float64) (float64, bool) {
	r, ok := CorrelationCoefficient(list1, list2)
	if !ok {
		return 0, false
	}
	return r * r, true
}

// Apply computes the named statistic. It reports false for a statistic
// outside the known set.
func Apply(list []float64, s stats.Statistic) (float64, bool) {
	switch s {
	case stats.Mean:
		return Mean(list), true
	case stats.Stdev:
		return Std(list), true
	case stats.Median:
		return Median(list), true
	case stats.Mode:
		return Mode(list), true
	case stats.IQR:
		return IQR(list), true
	case stats.Range:
		return Range(list), true
	case stats.Min:
		return Min(list), true
	case stats.Max:
		return Max(list), true
	}
	return 0, false
}

// ApplyNamed parses name and applies it; unknown names report false.
func ApplyNamed(list []float64, name string) (float64, bool) {
	s, ok := stats.ParseStatistic(name)
	if !ok {
		return 0, false
	}
	return Apply(list, s)
}

func sortedCopy(list []float64) []float64 {
	out := make([]float64, len(list))
	copy(out, list)
	sort.Float64s(out)
	return out
}
