package report

import (
	"context"
	"fmt"

	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal/dataset"
	apperrors "datareport/internal/errors"

	"github.com/tidwall/gjson"
)

// DefaultAlpha is the significance level of a test block that names none.
const DefaultAlpha = 0.05

// Spec is a parsed report: how to read the source table, the cleaning
// pipeline applied to it and the blocks evaluated over the result.
type Spec struct {
	HasHeaders bool
	Pipeline   []dataset.Step
	Blocks     []Block
}

// ParseSpec reads a JSON report of the form
//
//	{"hasHeaders": true, "pipeline": [...], "blocks": [...]}
//
// hasHeaders defaults to true. Interval blocks without a confidence get
// defaultConfidence; test blocks without an alpha get DefaultAlpha and
// without tails are two-sided. A block of unknown kind or test type is an
// error.
func ParseSpec(data []byte, defaultConfidence float64) (*Spec, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.InvalidInput("report spec is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, apperrors.InvalidInput("report spec must be a JSON object")
	}

	spec := &Spec{HasHeaders: true}
	if v := root.Get("hasHeaders"); v.Exists() {
		spec.HasHeaders = v.Bool()
	}

	pipeline, err := dataset.ParseSteps(root.Get("pipeline"))
	if err != nil {
		return nil, apperrors.Wrap(err, "invalid report pipeline")
	}
	spec.Pipeline = pipeline

	blocks := root.Get("blocks")
	if blocks.Exists() && !blocks.IsArray() {
		return nil, apperrors.InvalidInput("report blocks must be an array")
	}
	for i, v := range blocks.Array() {
		b, err := parseBlock(v, defaultConfidence)
		if err != nil {
			return nil, apperrors.Wrapf(err, "block %d", i)
		}
		spec.Blocks = append(spec.Blocks, b)
	}
	return spec, nil
}

func parseBlock(v gjson.Result, defaultConfidence float64) (Block, error) {
	b := Block{
		Kind: Kind(v.Get("kind").String()),
		Col:  v.Get("col").String(),
		Col2: v.Get("col2").String(),
	}
	if !b.Kind.Known() {
		return Block{}, apperrors.UnsupportedOperation(fmt.Sprintf("block kind %q", b.Kind), nil)
	}

	b.ID = core.NewID()
	if raw := v.Get("id").String(); raw != "" {
		id, err := core.ParseID(raw)
		if err != nil {
			return Block{}, apperrors.WithCode(apperrors.CodeInvalidInput, err)
		}
		b.ID = id
	}

	switch b.Kind {
	case KindStat:
		b.StatType = v.Get("statType").String()
	case KindInterval:
		raw := v.Get("intervalType").String()
		if it, ok := stats.ParseIntervalType(raw); ok {
			b.IntervalType = it
		} else {
			// rendered as Configuration Required
			b.IntervalType = stats.IntervalType(raw)
		}
		b.Confidence = defaultConfidence
		if c := v.Get("confidence"); c.Exists() {
			b.Confidence = c.Float()
		}
	case KindTest:
		d, err := parseDescriptor(v)
		if err != nil {
			return Block{}, err
		}
		d.Col, d.Col2 = b.Col, b.Col2
		b.Test = d
	}
	return b, nil
}

func parseDescriptor(v gjson.Result) (stats.TestDescriptor, error) {
	raw := v.Get("testType").String()
	tt, ok := stats.ParseTestType(raw)
	if !ok {
		return stats.TestDescriptor{}, apperrors.UnsupportedOperation(fmt.Sprintf("test type %q", raw), core.ErrUnknownTest)
	}

	td := stats.TestData{
		Alpha:          DefaultAlpha,
		Tails:          stats.TwoSided,
		H0:             v.Get("h0").String(),
		Ha:             v.Get("ha").String(),
		TestAgainst:    v.Get("testAgainst").String(),
		Rand:           v.Get("rand").Bool(),
		ShowConclusion: v.Get("showConclusion").Bool(),
	}
	if a := v.Get("alpha"); a.Exists() {
		td.Alpha = a.Float()
	}
	if t := v.Get("tails"); t.Exists() {
		tails, ok := stats.ParseTails(t.String())
		if !ok {
			return stats.TestDescriptor{}, apperrors.InvalidInput(fmt.Sprintf("tails must be two-sided, less or greater (got %q)", t.String()))
		}
		td.Tails = tails
	}
	for _, c := range v.Get("expCounts").Array() {
		td.ExpCounts = append(td.ExpCounts, c.String())
	}

	d := stats.TestDescriptor{TestType: tt, TestData: td}
	for _, c := range v.Get("columns").Array() {
		d.Columns = append(d.Columns, c.String())
	}
	return d, nil
}

// Run applies the pipeline to the source table and evaluates the blocks over
// the cleaned result, which is returned alongside the block results.
func (s *Spec) Run(ctx context.Context, source table.Table, workers int) ([]Result, table.Table, error) {
	df := dataset.FromTable(source)
	if err := dataset.Apply(df, s.Pipeline); err != nil {
		return nil, table.Table{}, err
	}
	cleaned := df.Table()
	results, err := Evaluate(ctx, cleaned, s.Blocks, workers)
	if err != nil {
		return nil, table.Table{}, err
	}
	return results, cleaned, nil
}
