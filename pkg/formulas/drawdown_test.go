package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{
			name:   "peak then trough",
			prices: []float64{100, 120, 90, 95, 130, 111},
			want:   -0.25, // 90 against the 120 peak
		},
		{
			name:   "strictly decreasing",
			prices: []float64{100, 90, 80},
			want:   -0.20,
		},
		{
			name:   "monotonically non-decreasing is zero",
			prices: []float64{100, 100, 105, 110},
			want:   0,
		},
		{
			name:   "constant prices",
			prices: []float64{100, 100, 100},
			want:   0,
		},
		{
			name:   "recovery does not erase the trough",
			prices: []float64{100, 50, 200},
			want:   -0.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMaxDrawdown(tt.prices)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-9)
			assert.LessOrEqual(t, *got, 0.0)
		})
	}

	t.Run("insufficient data", func(t *testing.T) {
		assert.Nil(t, CalculateMaxDrawdown([]float64{100}))
		assert.Nil(t, CalculateMaxDrawdown(nil))
	})
}
