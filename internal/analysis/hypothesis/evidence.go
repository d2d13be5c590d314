package hypothesis

import (
	"datareport/domain/stats"
	"datareport/domain/table"
)

// Sample describes one column a test read.
type Sample struct {
	Column    string
	Size      int
	Successes int
	Failures  int
}

// Evidence holds the inputs of a test's assumption checks.
type Evidence struct {
	Samples  []Sample
	Expected [][]float64
}

// Large-count cutoffs used by the assumption checks.
const (
	MinTSampleSize   = 30
	MinBinaryCount   = 10
	MinExpectedCount = 5.0
)

// GatherEvidence collects sample sizes, binary success and failure counts and
// expected counts for the columns d reads from t. Columns that do not
// resolve are left out.
func GatherEvidence(t table.Table, d stats.TestDescriptor) Evidence {
	typ := DeclaredTypeFor(d.TestType)
	var ev Evidence

	names := []string{d.Col}
	switch {
	case d.TestType == stats.ChiSquaredIndependence || d.TestType == stats.OneWayANOVA:
		names = d.Columns
		if len(names) == 0 {
			names = t.Labels()
		}
	case d.TestType.IsTwoSample():
		names = append(names, d.Col2)
	}

	var labels [][]string
	for _, name := range names {
		col, ok := column(t, name, typ)
		if !ok {
			continue
		}
		s := Sample{Column: name, Size: col.Len()}
		if typ == table.Binary {
			for _, v := range col.Numbers {
				if v == 1 {
					s.Successes++
				}
			}
			s.Failures = s.Size - s.Successes
		}
		ev.Samples = append(ev.Samples, s)
		labels = append(labels, col.Labels)
	}

	switch d.TestType {
	case stats.ChiSquaredGOF:
		if len(labels) == 1 {
			if exp, ok := scaleExpected(d.TestData.ExpCounts, len(labels[0])); ok {
				ev.Expected = [][]float64{exp}
			}
		}
	case stats.ChiSquaredIndependence:
		if _, exp, ok := contingency(labels); ok {
			ev.Expected = exp
		}
	}
	return ev
}

// minExpected is the smallest expected count, and false when there are none.
func (ev Evidence) minExpected() (float64, bool) {
	found := false
	low := 0.0
	for _, row := range ev.Expected {
		for _, v := range row {
			if !found || v < low {
				low, found = v, true
			}
		}
	}
	return low, found
}

// columnNames lists the sample columns in order.
func (ev Evidence) columnNames() []string {
	out := make([]string, len(ev.Samples))
	for i, s := range ev.Samples {
		out[i] = s.Column
	}
	return out
}
