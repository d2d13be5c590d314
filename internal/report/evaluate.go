package report

import (
	"context"
	"math"

	"datareport/domain/stats"
	"datareport/domain/table"
	"datareport/internal"
	"datareport/internal/analysis/hypothesis"
	"datareport/internal/analysis/intervals"

	"golang.org/x/sync/errgroup"
)

// Evaluate renders every block against t with at most workers blocks in
// flight. Results are in block order. Only cancellation of ctx is an error;
// blocks that cannot be computed render as text saying so.
func Evaluate(ctx context.Context, t table.Table, blocks []Block, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	log := internal.DefaultLogger.With("report")
	results := make([]Result, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = EvaluateBlock(t, b)
			log.Trace("block %s (%s) evaluated", b.ID, b.Kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// EvaluateBlock renders a single block. t is only read.
func EvaluateBlock(t table.Table, b Block) Result {
	res := Result{ID: b.ID, Kind: b.Kind}
	switch b.Kind {
	case KindStat:
		res.Text = StatText(b, t)
	case KindInterval:
		iv := intervalFor(t, b)
		res.Interval = iv
		res.Text = intervals.Text(b.Confidence, b.IntervalType, b.Col, b.Col2, iv)
	case KindTest:
		tr := hypothesis.Run(t, b.Test)
		res.Test = tr
		res.Text = hypothesis.Narrate(b.Test, tr, hypothesis.GatherEvidence(t, b.Test))
	default:
		res.Text = ConfigurationRequired
	}
	return res
}

func intervalFor(t table.Table, b Block) *stats.Interval {
	if b.Col == "" || math.IsNaN(b.Confidence) {
		return nil
	}
	return intervals.FromTable(t, b.IntervalType, b.Col, b.Col2, b.Confidence)
}
