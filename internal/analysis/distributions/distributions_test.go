package distributions

import (
	"context"
	"math"
	"sync"
	"testing"

	"datareport/domain/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeIsIdempotent(t *testing.T) {
	require.NoError(t, Initialize(context.Background()))
	require.NoError(t, Initialize(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, Initialize(context.Background()))
			assert.NotNil(t, Default())
		}()
	}
	wg.Wait()
}

func TestInitializeHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Initialize(ctx), context.Canceled)
}

func TestQuantilesInvertCDFs(t *testing.T) {
	b := Default()
	for _, p := range []float64{0.025, 0.1, 0.5, 0.9, 0.975} {
		assert.InDelta(t, p, b.TCDF(b.TQuantile(p, 7), 7), 1e-9)
		assert.InDelta(t, p, b.NormalCDF(b.NormalQuantile(p)), 1e-9)
		assert.InDelta(t, p, b.FCDF(b.FQuantile(p, 3, 9), 3, 9), 1e-9)
	}
	assert.InDelta(t, 1-b.FCDF(2.5, 3, 9), b.FSurvival(2.5, 3, 9), 1e-12)
}

func TestChiSquaredSurvival(t *testing.T) {
	assert.InDelta(t, 0.07524, Default().ChiSquaredSurvival(10, 5), 1e-5)
	assert.Equal(t, 1.0, Default().ChiSquaredSurvival(-1, 3))
}

func TestTailPValue(t *testing.T) {
	b := Default()

	assert.Equal(t, 0.2, b.TailPValue(0.2, stats.Less))
	assert.InDelta(t, 0.8, b.TailPValue(0.2, stats.Greater), 1e-15)
	assert.InDelta(t, 0.4, b.TailPValue(0.2, stats.TwoSided), 1e-15)
	assert.InDelta(t, 0.4, b.TailPValue(0.8, stats.TwoSided), 1e-15)
	assert.Equal(t, 1.0, b.TailPValue(0.5, stats.TwoSided))
	assert.True(t, math.IsNaN(b.TailPValue(math.NaN(), stats.Less)))
}

func TestQuantileOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Default().TQuantile(1.5, 4) })
}
