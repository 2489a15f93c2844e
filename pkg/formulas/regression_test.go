package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAlphaBeta(t *testing.T) {
	t.Run("series against itself", func(t *testing.T) {
		returns := []float64{0.01, -0.02, 0.03, -0.01, 0.02}
		alpha, beta := CalculateAlphaBeta(returns, returns)
		require.NotNil(t, alpha)
		require.NotNil(t, beta)
		assert.InDelta(t, 1.0, *beta, 1e-9)
		assert.InDelta(t, 0.0, *alpha, 1e-9)
	})

	t.Run("double leverage doubles beta", func(t *testing.T) {
		bench := []float64{0.01, -0.02, 0.03, -0.01}
		returns := []float64{0.02, -0.04, 0.06, -0.02}
		alpha, beta := CalculateAlphaBeta(returns, bench)
		require.NotNil(t, beta)
		assert.InDelta(t, 2.0, *beta, 1e-9)
		assert.InDelta(t, 0.0, *alpha, 1e-9)
	})

	t.Run("constant offset shows up as alpha", func(t *testing.T) {
		bench := []float64{0.01, -0.02, 0.03, -0.01}
		returns := make([]float64, len(bench))
		for i, b := range bench {
			returns[i] = b + 0.001
		}
		alpha, beta := CalculateAlphaBeta(returns, bench)
		require.NotNil(t, alpha)
		require.NotNil(t, beta)
		assert.InDelta(t, 1.0, *beta, 1e-9)
		assert.InDelta(t, 0.001, *alpha, 1e-9)
	})

	t.Run("flat benchmark is degenerate", func(t *testing.T) {
		// constant benchmark prices produce all-zero returns and no variance
		bench := CalculateReturns([]float64{100, 100, 100, 100})
		returns := []float64{0.01, -0.02, 0.03}
		alpha, beta := CalculateAlphaBeta(returns, bench)
		assert.Nil(t, alpha)
		assert.Nil(t, beta)
	})

	t.Run("length mismatch", func(t *testing.T) {
		alpha, beta := CalculateAlphaBeta([]float64{0.01, 0.02}, []float64{0.01})
		assert.Nil(t, alpha)
		assert.Nil(t, beta)
	})
}

func TestCalculateRSquared(t *testing.T) {
	t.Run("series against itself", func(t *testing.T) {
		returns := []float64{0.01, -0.02, 0.03, -0.01}
		got := CalculateRSquared(returns, returns)
		require.NotNil(t, got)
		assert.InDelta(t, 1.0, *got, 1e-9)
	})

	t.Run("perfect linear relation", func(t *testing.T) {
		bench := []float64{0.01, -0.02, 0.03, -0.01}
		returns := []float64{0.02, -0.04, 0.06, -0.02}
		got := CalculateRSquared(returns, bench)
		require.NotNil(t, got)
		assert.InDelta(t, 1.0, *got, 1e-9)
	})

	t.Run("stays within unit interval", func(t *testing.T) {
		returns := []float64{0.013, -0.007, 0.021, -0.016, 0.004}
		bench := []float64{0.008, -0.011, 0.017, 0.002, -0.009}
		got := CalculateRSquared(returns, bench)
		require.NotNil(t, got)
		assert.GreaterOrEqual(t, *got, 0.0)
		assert.LessOrEqual(t, *got, 1.0)
	})

	t.Run("zero variance side is undefined", func(t *testing.T) {
		flat := []float64{0, 0, 0}
		moving := []float64{0.01, -0.02, 0.03}
		assert.Nil(t, CalculateRSquared(flat, moving))
		assert.Nil(t, CalculateRSquared(moving, flat))
	})
}

func TestCalculateTrackingError(t *testing.T) {
	t.Run("identical series track perfectly", func(t *testing.T) {
		returns := []float64{0.01, -0.02, 0.03, -0.01}
		got := CalculateTrackingError(returns, returns)
		require.NotNil(t, got)
		assert.Zero(t, *got)
	})

	t.Run("constant offset still tracks perfectly", func(t *testing.T) {
		bench := []float64{0.01, -0.02, 0.03, -0.01}
		returns := make([]float64, len(bench))
		for i, b := range bench {
			returns[i] = b + 0.001
		}
		got := CalculateTrackingError(returns, bench)
		require.NotNil(t, got)
		assert.Zero(t, *got)
	})

	t.Run("known divergence", func(t *testing.T) {
		returns := []float64{0.01, 0.03}
		bench := []float64{0.02, 0.01}
		got := CalculateTrackingError(returns, bench)
		require.NotNil(t, got)
		// diffs {-0.01, 0.02}, stdev 0.0212132, annualized
		assert.InDelta(t, 0.33675, *got, 1e-4)
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.Nil(t, CalculateTrackingError([]float64{0.01}, []float64{0.01, 0.02}))
	})
}
