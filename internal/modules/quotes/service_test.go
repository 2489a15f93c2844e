package quotes

import (
	"errors"
	"testing"
	"time"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls  int
	points []domain.PricePoint
	err    error
}

func (f *stubFetcher) GetHistoricalPrices(symbol string, period domain.Period) ([]domain.PricePoint, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

func risingSeries(n int) []domain.PricePoint {
	points := make([]domain.PricePoint, n)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range points {
		points[i] = domain.PricePoint{
			Date:     start.AddDate(0, 0, i),
			AdjClose: 100 + 2*float64(i),
		}
	}
	return points
}

func TestGetSeriesUsesCache(t *testing.T) {
	fetcher := &stubFetcher{points: risingSeries(5)}
	svc := NewService(fetcher, NewSessionCache(15*time.Minute), zerolog.Nop())

	first, err := svc.GetSeries("AAPL", domain.Period1Y)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, 1, fetcher.calls)

	second, err := svc.GetSeries("AAPL", domain.Period1Y)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls, "second read must come from cache")

	_, err = svc.GetSeries("AAPL", domain.Period5Y)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls, "new horizon must refetch")
}

func TestGetSeriesErrors(t *testing.T) {
	t.Run("fetch error passes through", func(t *testing.T) {
		fetcher := &stubFetcher{err: domain.ErrRateLimited}
		svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

		_, err := svc.GetSeries("AAPL", domain.Period1Y)
		assert.True(t, errors.Is(err, domain.ErrRateLimited))
	})

	t.Run("empty series is not found", func(t *testing.T) {
		fetcher := &stubFetcher{points: []domain.PricePoint{}}
		svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

		_, err := svc.GetSeries("XXXX", domain.Period1Y)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestHistorySinglePointIsInsufficient(t *testing.T) {
	fetcher := &stubFetcher{points: risingSeries(1)}
	svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

	_, err := svc.History("NEW", domain.Period1Y, 0, 0)
	assert.True(t, errors.Is(err, domain.ErrInsufficientData))
}

func TestHistoryChartShape(t *testing.T) {
	fetcher := &stubFetcher{points: risingSeries(5)}
	svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

	resp, err := svc.History("AAPL", domain.Period1Y, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, domain.Period1Y, resp.Period)
	require.Len(t, resp.Prices, 5)
	assert.Equal(t, "2024-01-02", resp.Prices[0].Time)
	assert.Equal(t, 100.0, resp.Prices[0].Value)
	assert.Nil(t, resp.SMA)
	assert.Nil(t, resp.RSI)
}

func TestHistoryOverlays(t *testing.T) {
	fetcher := &stubFetcher{points: risingSeries(5)}
	svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

	resp, err := svc.History("AAPL", domain.Period1Y, 2, 2)
	require.NoError(t, err)

	// SMA(2) warm-up skips the first point
	require.Len(t, resp.SMA, 4)
	assert.Equal(t, "2024-01-03", resp.SMA[0].Time)
	assert.InDelta(t, 101.0, resp.SMA[0].Value, 1e-9)
	assert.InDelta(t, 107.0, resp.SMA[3].Value, 1e-9)

	// RSI(2) warm-up skips two points; an all-gains series pins RSI at 100
	require.Len(t, resp.RSI, 3)
	assert.Equal(t, "2024-01-04", resp.RSI[0].Time)
	for _, p := range resp.RSI {
		assert.InDelta(t, 100.0, p.Value, 1e-6)
	}
}

func TestHistoryOverlayTooShort(t *testing.T) {
	fetcher := &stubFetcher{points: risingSeries(3)}
	svc := NewService(fetcher, NewSessionCache(time.Minute), zerolog.Nop())

	resp, err := svc.History("AAPL", domain.Period1Y, 10, 10)
	require.NoError(t, err)
	assert.Nil(t, resp.SMA)
	assert.Nil(t, resp.RSI)
	assert.Len(t, resp.Prices, 3)
}
