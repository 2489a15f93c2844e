package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/modules/settings"
	"github.com/kallias/watchboard/internal/symbols"
	"github.com/kallias/watchboard/pkg/formulas"
	"github.com/rs/zerolog"
)

// ErrInvalidRequest marks report parameters the API cannot act on.
var ErrInvalidRequest = errors.New("invalid report request")

// SeriesSource yields price series. The quotes session cache sits behind it,
// so repeated symbols within a session cost one fetch.
type SeriesSource interface {
	GetSeries(symbol string, period domain.Period) ([]domain.PricePoint, error)
}

// SettingsSource reads stored defaults
type SettingsSource interface {
	Get(key string) (*string, error)
	GetFloat(key string) (*float64, error)
}

// Defaults are the server-level fallbacks used when neither the request nor
// a stored setting names a value.
type Defaults struct {
	Benchmark    string
	Period       domain.Period
	RiskFreeRate float64
}

// Service computes metrics reports. Reports are never cached: the numbers
// are recomputed on every request so watchlist, benchmark, and horizon
// changes always show through.
type Service struct {
	series   SeriesSource
	settings SettingsSource
	defaults Defaults
	log      zerolog.Logger
}

// NewService creates a new metrics service
func NewService(series SeriesSource, settingsSource SettingsSource, defaults Defaults, log zerolog.Logger) *Service {
	return &Service{
		series:   series,
		settings: settingsSource,
		defaults: defaults,
		log:      log.With().Str("service", "metrics").Logger(),
	}
}

// BuildReport fetches every requested series plus the benchmark and computes
// the full metrics table. A ticker whose data cannot be fetched or whose
// series is too short gets a flagged row; only a benchmark failure aborts
// the report.
func (s *Service) BuildReport(req ReportRequest) (*Report, error) {
	tickers, err := s.resolveTickers(req)
	if err != nil {
		return nil, err
	}

	benchmark, err := s.resolveBenchmark(req)
	if err != nil {
		return nil, err
	}

	period, err := s.resolvePeriod(req)
	if err != nil {
		return nil, err
	}

	riskFree, err := s.resolveRiskFree(req)
	if err != nil {
		return nil, err
	}

	benchPoints, err := s.series.GetSeries(benchmark, period)
	if err != nil {
		return nil, fmt.Errorf("benchmark %s: %w", benchmark, err)
	}
	benchReturns := dailyReturns(benchPoints)

	benchPrices := domain.Closes(benchPoints)

	rows := make([]RowMetrics, 0, len(tickers))
	for _, ticker := range tickers {
		rows = append(rows, s.buildRow(ticker, period, riskFree, benchReturns))
	}

	s.log.Info().
		Str("benchmark", benchmark).
		Str("period", string(period)).
		Int("tickers", len(tickers)).
		Msg("Report computed")

	return &Report{
		ID:                        uuid.NewString(),
		GeneratedAt:               time.Now().UTC(),
		Benchmark:                 benchmark,
		Period:                    period,
		RiskFreeRate:              riskFree,
		BenchmarkAnnualizedReturn: formulas.AnnualizedReturn(benchPrices),
		Rows:                      rows,
	}, nil
}

// buildRow fetches one ticker and computes its metrics. Fetch failures come
// back as a row with Error set so the rest of the batch is unaffected.
func (s *Service) buildRow(symbol string, period domain.Period, riskFree float64, bench datedReturns) RowMetrics {
	row := RowMetrics{Symbol: symbol}

	points, err := s.series.GetSeries(symbol, period)
	if err != nil {
		row.Error = classifyRowError(err)
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("Skipping ticker")
		return row
	}

	s.computeRow(&row, points, bench, riskFree)
	return row
}

// computeRow fills in the metric columns from a fetched series. Absolute
// metrics run on the ticker's own series; relative metrics run on the
// date-aligned intersection with the benchmark.
func (s *Service) computeRow(row *RowMetrics, points []domain.PricePoint, bench datedReturns, riskFree float64) {
	prices := domain.Closes(points)

	if len(prices) < 2 {
		row.Flags = append(row.Flags, FlagInsufficientData)
		return
	}

	returns := formulas.CalculateReturns(prices)
	row.Observations = len(returns)

	row.AnnualizedReturn = formulas.AnnualizedReturn(prices)
	row.MaxDrawdown = formulas.CalculateMaxDrawdown(prices)

	if len(returns) < 2 {
		row.Flags = append(row.Flags, FlagInsufficientData)
	} else {
		vol := formulas.AnnualizedVolatility(returns)
		row.AnnualizedVolatility = &vol

		row.SharpeRatio = formulas.CalculateSharpeRatio(returns, riskFree, formulas.TradingDaysPerYear)
		if row.SharpeRatio == nil {
			row.Flags = append(row.Flags, FlagZeroVolatility)
		}

		row.SortinoRatio = formulas.CalculateSortinoRatio(returns, riskFree, 0, formulas.TradingDaysPerYear)
		if row.SortinoRatio == nil {
			row.Flags = append(row.Flags, FlagNoDownsideReturns)
		}
	}

	own := dailyReturns(points)
	aligned, alignedBench := alignReturns(own, bench)
	row.Overlap = len(aligned)

	if len(aligned) < 2 {
		row.Flags = append(row.Flags, FlagNoOverlap)
		return
	}

	row.TrackingError = formulas.CalculateTrackingError(aligned, alignedBench)

	alpha, beta := formulas.CalculateAlphaBeta(aligned, alignedBench)
	if beta == nil {
		row.Flags = append(row.Flags, FlagDegenerateBenchmark)
	} else {
		// the regression intercept is daily; the report shows it annualized
		annualAlpha := *alpha * formulas.TradingDaysPerYear
		row.Alpha = &annualAlpha
		row.Beta = beta
	}

	row.RSquared = formulas.CalculateRSquared(aligned, alignedBench)
}

func (s *Service) resolveTickers(req ReportRequest) ([]string, error) {
	if req.TickersText != "" {
		list := symbols.ParseList(req.TickersText)
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: no tickers given", ErrInvalidRequest)
		}
		return list, nil
	}

	seen := make(map[string]bool, len(req.Tickers))
	list := make([]string, 0, len(req.Tickers))
	for _, raw := range req.Tickers {
		sym := symbols.Normalize(raw)
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		list = append(list, sym)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no tickers given", ErrInvalidRequest)
	}
	return list, nil
}

func (s *Service) resolveBenchmark(req ReportRequest) (string, error) {
	if req.Benchmark != "" {
		sym := symbols.Normalize(req.Benchmark)
		if sym == "" {
			return "", fmt.Errorf("%w: benchmark must not be blank", ErrInvalidRequest)
		}
		return sym, nil
	}

	if s.settings != nil {
		stored, err := s.settings.Get(settings.KeyDefaultBenchmark)
		if err != nil {
			s.log.Warn().Err(err).Msg("Failed to read default benchmark setting")
		} else if stored != nil {
			if sym := symbols.Normalize(*stored); sym != "" {
				return sym, nil
			}
			s.log.Warn().Msg("Ignoring blank stored default benchmark")
		}
	}

	return s.defaults.Benchmark, nil
}

func (s *Service) resolvePeriod(req ReportRequest) (domain.Period, error) {
	if req.Period != "" {
		period := domain.Period(req.Period)
		if !period.IsValid() {
			return "", fmt.Errorf("%w: period must be one of 1y, 3y, 5y", ErrInvalidRequest)
		}
		return period, nil
	}

	if s.settings != nil {
		stored, err := s.settings.Get(settings.KeyDefaultPeriod)
		if err != nil {
			s.log.Warn().Err(err).Msg("Failed to read default period setting")
		} else if stored != nil {
			if period := domain.Period(*stored); period.IsValid() {
				return period, nil
			}
			s.log.Warn().Str("period", *stored).Msg("Ignoring invalid stored default period")
		}
	}

	return s.defaults.Period, nil
}

func (s *Service) resolveRiskFree(req ReportRequest) (float64, error) {
	if req.RiskFreeRate != nil {
		rf := *req.RiskFreeRate
		if rf < 0 || rf >= 1 {
			return 0, fmt.Errorf("%w: risk-free rate must be a decimal in [0, 1)", ErrInvalidRequest)
		}
		return rf, nil
	}

	if s.settings != nil {
		stored, err := s.settings.GetFloat(settings.KeyRiskFreeRate)
		if err != nil {
			s.log.Warn().Err(err).Msg("Failed to read risk-free rate setting")
		} else if stored != nil {
			if *stored >= 0 && *stored < 1 {
				return *stored, nil
			}
			s.log.Warn().Float64("rate", *stored).Msg("Ignoring invalid stored risk-free rate")
		}
	}

	return s.defaults.RiskFreeRate, nil
}

func classifyRowError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return RowErrorNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return RowErrorRateLimited
	default:
		return RowErrorUnavailable
	}
}
