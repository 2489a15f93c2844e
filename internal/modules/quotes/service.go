package quotes

import (
	"fmt"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/pkg/formulas"
	"github.com/rs/zerolog"
)

// Fetcher is the slice of the market-data client this module needs.
type Fetcher interface {
	GetHistoricalPrices(symbol string, period domain.Period) ([]domain.PricePoint, error)
}

// ChartPoint is one rendered chart sample
type ChartPoint struct {
	Time  string  `json:"time"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// ChartResponse is a price history with optional indicator overlays
type ChartResponse struct {
	Symbol string        `json:"symbol"`
	Period domain.Period `json:"period"`
	Prices []ChartPoint  `json:"prices"`
	SMA    []ChartPoint  `json:"sma,omitempty"`
	RSI    []ChartPoint  `json:"rsi,omitempty"`
}

// Service fetches price series through the session cache and shapes them
// for the chart layer. Callers treat returned series as read-only.
type Service struct {
	fetcher Fetcher
	cache   *SessionCache
	log     zerolog.Logger
}

// NewService creates a new quotes service
func NewService(fetcher Fetcher, cache *SessionCache, log zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		log:     log.With().Str("service", "quotes").Logger(),
	}
}

// GetSeries returns the price series for a symbol over a period, from cache
// when fresh
func (s *Service) GetSeries(symbol string, period domain.Period) ([]domain.PricePoint, error) {
	if points, ok := s.cache.Get(symbol, period); ok {
		return points, nil
	}

	points, err := s.fetcher.GetHistoricalPrices(symbol, period)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty series for %s: %w", symbol, domain.ErrNotFound)
	}

	s.cache.Put(symbol, period, points)
	return points, nil
}

// History returns the chart series for one symbol, with SMA and RSI overlays
// when a positive window or lookback is given. Overlay series start after
// their warm-up region so charts never draw placeholder values.
func (s *Service) History(symbol string, period domain.Period, smaWindow, rsiPeriod int) (*ChartResponse, error) {
	points, err := s.GetSeries(symbol, period)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%s has %d price points: %w", symbol, len(points), domain.ErrInsufficientData)
	}

	resp := &ChartResponse{
		Symbol: symbol,
		Period: period,
		Prices: toChartPoints(points),
	}

	closes := domain.Closes(points)

	if smaWindow > 0 {
		if sma := formulas.CalculateSMASeries(closes, smaWindow); sma != nil {
			resp.SMA = overlayPoints(points, sma, smaWindow-1)
		}
	}

	if rsiPeriod > 0 {
		if rsi := formulas.CalculateRSISeries(closes, rsiPeriod); rsi != nil {
			resp.RSI = overlayPoints(points, rsi, rsiPeriod)
		}
	}

	return resp, nil
}

func toChartPoints(points []domain.PricePoint) []ChartPoint {
	out := make([]ChartPoint, len(points))
	for i, p := range points {
		out[i] = ChartPoint{
			Time:  p.Date.Format("2006-01-02"),
			Value: p.AdjClose,
		}
	}
	return out
}

// overlayPoints pairs indicator values with their dates, skipping the
// warm-up region at the head of the series
func overlayPoints(points []domain.PricePoint, values []float64, warmup int) []ChartPoint {
	if warmup >= len(points) {
		return nil
	}

	out := make([]ChartPoint, 0, len(points)-warmup)
	for i := warmup; i < len(points) && i < len(values); i++ {
		out = append(out, ChartPoint{
			Time:  points[i].Date.Format("2006-01-02"),
			Value: values[i],
		})
	}
	return out
}
