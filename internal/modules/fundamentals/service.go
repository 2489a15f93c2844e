package fundamentals

import (
	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/symbols"
	"github.com/rs/zerolog"
)

// Fetcher yields quote snapshots for single symbols
type Fetcher interface {
	GetQuote(symbol string) (*domain.Quote, error)
}

// Service fetches fundamental snapshots and normalizes their ratio fields.
// Symbols that fail to fetch are dropped from the result rather than failing
// the batch.
type Service struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewService creates a new fundamentals service
func NewService(fetcher Fetcher, log zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log.With().Str("service", "fundamentals").Logger(),
	}
}

// Get fetches one snapshot per ticker, in request order, dropping blanks,
// duplicates, and symbols whose quote cannot be fetched.
func (s *Service) Get(tickers []string) []domain.Quote {
	rows := make([]domain.Quote, 0, len(tickers))
	seen := make(map[string]bool, len(tickers))

	for _, raw := range tickers {
		sym := symbols.Normalize(raw)
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true

		quote, err := s.fetcher.GetQuote(sym)
		if err != nil {
			s.log.Warn().Err(err).Str("symbol", sym).Msg("Skipping fundamentals row")
			continue
		}

		normalizeQuote(quote)
		rows = append(rows, *quote)
	}

	return rows
}

// normalizeQuote converts percent-like ratio fields to decimals in place.
// P/E, forward P/E, and debt/equity are plain ratios and stay raw.
func normalizeQuote(q *domain.Quote) {
	q.DividendYield = normalizeDecimal(q.DividendYield)
	q.NetProfitMargin = normalizeDecimal(q.NetProfitMargin)
	q.ExpenseRatio = normalizeDecimal(q.ExpenseRatio)
}

// normalizeDecimal maps percent-like values onto decimals. Yahoo reports
// the same field as 0.018 for one symbol and 1.8 for another depending on
// quote type, so anything in (1, 100] reads as a percentage. Values outside
// both ranges pass through untouched.
func normalizeDecimal(v *float64) *float64 {
	if v == nil {
		return nil
	}
	if *v >= 0 && *v <= 1 {
		return v
	}
	if *v > 1 && *v <= 100 {
		f := *v / 100
		return &f
	}
	return v
}
