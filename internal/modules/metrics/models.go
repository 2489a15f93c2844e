package metrics

import (
	"time"

	"github.com/kallias/watchboard/internal/domain"
)

// Flags attached to report rows when a value is undefined rather than
// computed. Undefined metrics are JSON null; the flag says why.
const (
	FlagInsufficientData    = "insufficient_data"
	FlagZeroVolatility      = "zero_volatility"
	FlagNoDownsideReturns   = "no_downside_returns"
	FlagDegenerateBenchmark = "degenerate_benchmark"
	FlagNoOverlap           = "no_overlap"
)

// Row error reasons for symbols whose data never arrived.
const (
	RowErrorNotFound    = "not_found"
	RowErrorRateLimited = "rate_limited"
	RowErrorUnavailable = "unavailable"
)

// ReportRequest describes one report computation. Tickers may arrive as a
// list or as free text (comma or newline separated); the text form wins when
// both are set. Benchmark, period, and risk-free rate fall back to stored
// settings, then to server defaults.
type ReportRequest struct {
	Tickers      []string `json:"tickers"`
	TickersText  string   `json:"tickers_text"`
	Benchmark    string   `json:"benchmark"`
	Period       string   `json:"period"`
	RiskFreeRate *float64 `json:"risk_free_rate"`
}

// RowMetrics is one ticker's line of the report. Pointer fields are nil when
// the metric is undefined; Flags carries the reasons.
type RowMetrics struct {
	Symbol               string   `json:"symbol"`
	Observations         int      `json:"observations"`
	Overlap              int      `json:"overlap"`
	AnnualizedReturn     *float64 `json:"annualized_return"`
	AnnualizedVolatility *float64 `json:"annualized_volatility"`
	SharpeRatio          *float64 `json:"sharpe_ratio"`
	SortinoRatio         *float64 `json:"sortino_ratio"`
	MaxDrawdown          *float64 `json:"max_drawdown"`
	TrackingError        *float64 `json:"tracking_error"`
	Alpha                *float64 `json:"alpha"`
	Beta                 *float64 `json:"beta"`
	RSquared             *float64 `json:"r_squared"`
	Flags                []string `json:"flags,omitempty"`
	Error                string   `json:"error,omitempty"`
}

// Report is the computed metrics table for one request
type Report struct {
	ID                        string        `json:"id"`
	GeneratedAt               time.Time     `json:"generated_at"`
	Benchmark                 string        `json:"benchmark"`
	Period                    domain.Period `json:"period"`
	RiskFreeRate              float64       `json:"risk_free_rate"`
	BenchmarkAnnualizedReturn *float64      `json:"benchmark_annualized_return"`
	Rows                      []RowMetrics  `json:"rows"`
}
