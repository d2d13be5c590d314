// Package report evaluates the analysis blocks of a report against a source
// table: descriptive statistics, confidence intervals and hypothesis tests,
// each rendered as text.
package report

import (
	"datareport/domain/core"
	"datareport/domain/stats"
)

// Kind is the kind of analysis a block performs.
type Kind string

const (
	KindStat     Kind = "stat"
	KindInterval Kind = "interval"
	KindTest     Kind = "test"
)

// Known reports whether the kind can be evaluated.
func (k Kind) Known() bool {
	switch k {
	case KindStat, KindInterval, KindTest:
		return true
	}
	return false
}

// Block is one analysis in a report. Only the fields of its kind are read.
type Block struct {
	ID   core.ID `json:"id"`
	Kind Kind    `json:"kind"`

	// stat and interval blocks
	StatType string `json:"statType,omitempty"`
	Col      string `json:"col,omitempty"`
	Col2     string `json:"col2,omitempty"`

	IntervalType stats.IntervalType `json:"intervalType,omitempty"`
	Confidence   float64            `json:"confidence,omitempty"`

	Test stats.TestDescriptor `json:"test,omitempty"`
}

// NewStatBlock creates a descriptive statistic block.
func NewStatBlock(statType, col, col2 string) Block {
	return Block{ID: core.NewID(), Kind: KindStat, StatType: statType, Col: col, Col2: col2}
}

// NewIntervalBlock creates a confidence interval block.
func NewIntervalBlock(it stats.IntervalType, col, col2 string, confidence float64) Block {
	return Block{ID: core.NewID(), Kind: KindInterval, IntervalType: it, Col: col, Col2: col2, Confidence: confidence}
}

// NewTestBlock creates a hypothesis test block.
func NewTestBlock(d stats.TestDescriptor) Block {
	return Block{ID: core.NewID(), Kind: KindTest, Test: d}
}

// Result is the evaluated form of a block. Interval and Test are set for
// their kinds when the computation succeeded.
type Result struct {
	ID       core.ID           `json:"id"`
	Kind     Kind              `json:"kind"`
	Text     string            `json:"text"`
	Interval *stats.Interval   `json:"interval,omitempty"`
	Test     *stats.TestResult `json:"test,omitempty"`
}
