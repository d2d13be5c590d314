// Package intervals computes confidence intervals for one or two numeric
// samples.
//
// Every estimator fails closed: nil data, a significance level outside (0, 1)
// or a sample with fewer than two values yields a nil interval, and a panic
// from the distribution backend is recovered and reported the same way.
package intervals

import (
	"math"

	"datareport/domain/stats"
	"datareport/internal"
	"datareport/internal/analysis/distributions"

	mstats "github.com/montanaflynn/stats"
)

type sample struct {
	n        float64
	mean     float64
	variance float64
}

func describe(data []float64) (sample, bool) {
	if len(data) < 2 {
		return sample{}, false
	}
	m, err := mstats.Mean(data)
	if err != nil {
		return sample{}, false
	}
	v, err := mstats.SampleVariance(data)
	if err != nil {
		return sample{}, false
	}
	return sample{n: float64(len(data)), mean: m, variance: v}, true
}

func validAlpha(alpha float64) bool {
	return !math.IsNaN(alpha) && alpha > 0 && alpha < 1
}

// guard runs an estimator and converts a backend panic into a nil interval.
func guard(name string, f func() *stats.Interval) (iv *stats.Interval) {
	defer func() {
		if r := recover(); r != nil {
			internal.DefaultLogger.With("intervals").Debug("%s: recovered backend failure: %v", name, r)
			iv = nil
		}
	}()
	return f()
}

// OneSampleT is the t-interval for a mean: mean ± t(1-α/2, n-1)·s/√n.
func OneSampleT(data []float64, alpha float64) *stats.Interval {
	if data == nil || !validAlpha(alpha) {
		return nil
	}
	return guard("one-sample t", func() *stats.Interval {
		s, ok := describe(data)
		if !ok {
			return nil
		}
		t := distributions.Default().TQuantile(1-alpha/2, s.n-1)
		margin := t * math.Sqrt(s.variance/s.n)
		return &stats.Interval{Lower: s.mean - margin, Upper: s.mean + margin}
	})
}

// TwoSampleT is the Welch interval for the difference of two means, with the
// Welch-Satterthwaite degrees of freedom.
func TwoSampleT(data, data2 []float64, alpha float64) *stats.Interval {
	if data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard("two-sample t", func() *stats.Interval {
		s1, ok1 := describe(data)
		s2, ok2 := describe(data2)
		if !ok1 || !ok2 {
			return nil
		}
		se, df := welch(s1, s2)
		t := distributions.Default().TQuantile(1-alpha/2, df)
		diff := s1.mean - s2.mean
		return &stats.Interval{Lower: diff - t*se, Upper: diff + t*se}
	})
}

// OneSampleZ is mean ± z(1-α/2)·s/√n with the sample standard deviation
// standing in for sigma.
func OneSampleZ(data []float64, alpha float64) *stats.Interval {
	if data == nil || !validAlpha(alpha) {
		return nil
	}
	return guard("one-sample z", func() *stats.Interval {
		s, ok := describe(data)
		if !ok {
			return nil
		}
		z := distributions.Default().NormalQuantile(1 - alpha/2)
		margin := z * math.Sqrt(s.variance/s.n)
		return &stats.Interval{Lower: s.mean - margin, Upper: s.mean + margin}
	})
}

// TwoSampleZ is the z-interval for the difference of two means or
// proportions.
func TwoSampleZ(data, data2 []float64, alpha float64) *stats.Interval {
	if data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard("two-sample z", func() *stats.Interval {
		s1, ok1 := describe(data)
		s2, ok2 := describe(data2)
		if !ok1 || !ok2 {
			return nil
		}
		z := distributions.Default().NormalQuantile(1 - alpha/2)
		se := math.Sqrt(s1.variance/s1.n + s2.variance/s2.n)
		diff := s1.mean - s2.mean
		return &stats.Interval{Lower: diff - z*se, Upper: diff + z*se}
	})
}

// TwoSampleVariance is the interval for the ratio of variances s1²/s2²,
// built from the F(n1-1, n2-1) quantiles.
func TwoSampleVariance(data, data2 []float64, alpha float64) *stats.Interval {
	if data == nil || data2 == nil || !validAlpha(alpha) {
		return nil
	}
	return guard("two-sample variance", func() *stats.Interval {
		s1, ok1 := describe(data)
		s2, ok2 := describe(data2)
		if !ok1 || !ok2 {
			return nil
		}
		b := distributions.Default()
		ratio := s1.variance / s2.variance
		d1, d2 := s1.n-1, s2.n-1
		return &stats.Interval{
			Lower: ratio / b.FQuantile(1-alpha/2, d1, d2),
			Upper: ratio / b.FQuantile(alpha/2, d1, d2),
		}
	})
}

// Compute dispatches on the interval type with alpha = 1 - confidence.
// Two-sample types need data2; an unknown type yields nil.
func Compute(it stats.IntervalType, data, data2 []float64, confidence float64) *stats.Interval {
	alpha := 1 - confidence
	switch it {
	case stats.OneSampleTInterval:
		return OneSampleT(data, alpha)
	case stats.TwoSampleTInterval:
		return TwoSampleT(data, data2, alpha)
	case stats.OneSampleZInterval:
		return OneSampleZ(data, alpha)
	case stats.TwoSampleZInterval:
		return TwoSampleZ(data, data2, alpha)
	case stats.TwoSampleVarInterval:
		return TwoSampleVariance(data, data2, alpha)
	}
	return nil
}

func welch(s1, s2 sample) (se, df float64) {
	a := s1.variance / s1.n
	b := s2.variance / s2.n
	se = math.Sqrt(a + b)
	df = (a + b) * (a + b) / (a*a/(s1.n-1) + b*b/(s2.n-1))
	return se, df
}
