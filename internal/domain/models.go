package domain

import "time"

// Period represents a supported price-history horizon
type Period string

const (
	Period1Y Period = "1y"
	Period3Y Period = "3y"
	Period5Y Period = "5y"
)

// IsValid reports whether the period is one of the supported horizons
func (p Period) IsValid() bool {
	switch p {
	case Period1Y, Period3Y, Period5Y:
		return true
	}
	return false
}

// PricePoint is one trading day of an adjusted-close price series
type PricePoint struct {
	Date     time.Time `json:"date"`
	AdjClose float64   `json:"adj_close"`
}

// Closes extracts the adjusted-close values of a series in date order
func Closes(points []PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.AdjClose
	}
	return closes
}

// Quote is a point-in-time fundamentals snapshot for one symbol.
// Pointer fields are nil when the data source omits the value.
type Quote struct {
	Symbol          string   `json:"symbol"`
	LongName        string   `json:"long_name"`
	QuoteType       string   `json:"quote_type"`
	Price           *float64 `json:"price"`
	ChangePercent   *float64 `json:"change_percent"`
	TrailingPE      *float64 `json:"trailing_pe"`
	ForwardPE       *float64 `json:"forward_pe"`
	DividendYield   *float64 `json:"dividend_yield"`
	NetProfitMargin *float64 `json:"net_profit_margin"`
	DebtToEquity    *float64 `json:"debt_to_equity"`
	ExpenseRatio    *float64 `json:"expense_ratio"`
}
