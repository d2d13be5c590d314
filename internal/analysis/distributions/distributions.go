// Package distributions is the numeric backend behind intervals and
// hypothesis tests: CDFs, quantiles and survival functions of the t, normal,
// F and chi-squared distributions.
//
// The backend sits behind a one-shot initialization gate. Callers run
// Initialize once at startup; Default initializes lazily for callers that
// skipped it. After the gate every method is synchronous and safe for
// concurrent use.
package distributions

import (
	"context"
	"fmt"
	"math"
	"sync"

	"datareport/domain/stats"
	"datareport/internal"

	"gonum.org/v1/gonum/stat/distuv"
)

// Backend computes distribution functions. It holds no mutable state.
type Backend struct{}

var (
	initOnce sync.Once
	initErr  error
	backend  = &Backend{}
)

// Known quantiles checked when the backend is initialized.
var sanityChecks = []struct {
	name string
	got  func(b *Backend) float64
	want float64
}{
	{"z(0.975)", func(b *Backend) float64 { return b.NormalQuantile(0.975) }, 1.959963984540054},
	{"t(0.975, 4)", func(b *Backend) float64 { return b.TQuantile(0.975, 4) }, 2.776445105197793},
	{"F(0.975, 4, 4)", func(b *Backend) float64 { return b.FQuantile(0.975, 4, 4) }, 9.604529884722892},
	{"X2 survival(10, 5)", func(b *Backend) float64 { return b.ChiSquaredSurvival(10, 5) }, 0.0752352461465122},
}

// Initialize opens the gate. It is safe to call repeatedly; only the first
// call does any work and every call returns the same result.
func Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	initOnce.Do(func() {
		log := internal.DefaultLogger.With("distributions")
		for _, c := range sanityChecks {
			got := c.got(backend)
			if math.IsNaN(got) || math.Abs(got-c.want) > 1e-6*math.Max(1, math.Abs(c.want)) {
				initErr = fmt.Errorf("distributions: %s = %v, want %v", c.name, got, c.want)
				log.Error("backend failed sanity check: %v", initErr)
				return
			}
		}
		log.Debug("backend ready")
	})
	return initErr
}

// Default returns the backend, initializing it on first use.
func Default() *Backend {
	_ = Initialize(context.Background())
	return backend
}

// TCDF is the Student's t CDF with df degrees of freedom.
func (b *Backend) TCDF(x, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(x)
}

// TQuantile is the inverse of TCDF.
func (b *Backend) TQuantile(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// NormalCDF is the standard normal CDF.
func (b *Backend) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile is the inverse of NormalCDF.
func (b *Backend) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// FCDF is the CDF of the F distribution with (d1, d2) degrees of freedom.
func (b *Backend) FCDF(x, d1, d2 float64) float64 {
	return distuv.F{D1: d1, D2: d2}.CDF(x)
}

// FQuantile is the inverse of FCDF.
func (b *Backend) FQuantile(p, d1, d2 float64) float64 {
	return distuv.F{D1: d1, D2: d2}.Quantile(p)
}

// FSurvival is 1 - FCDF, computed directly.
func (b *Backend) FSurvival(x, d1, d2 float64) float64 {
	return distuv.F{D1: d1, D2: d2}.Survival(x)
}

// ChiSquaredSurvival is the upper tail of the chi-squared distribution with
// k degrees of freedom.
func (b *Backend) ChiSquaredSurvival(x, k float64) float64 {
	return distuv.ChiSquared{K: k}.Survival(x)
}

// TailPValue turns the CDF of a test statistic into a p-value for the given
// alternative. Two-sided doubles the smaller tail and is capped at 1.
func (b *Backend) TailPValue(cdf float64, tails stats.Tails) float64 {
	if math.IsNaN(cdf) {
		return math.NaN()
	}
	switch tails {
	case stats.Less:
		return cdf
	case stats.Greater:
		return 1 - cdf
	default:
		return math.Min(1, 2*math.Min(cdf, 1-cdf))
	}
}
