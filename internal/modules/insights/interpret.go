package insights

import (
	"fmt"
	"math"

	"github.com/kallias/watchboard/internal/modules/metrics"
)

// Insight pairs one metric with its plain-English reading
type Insight struct {
	Metric string `json:"metric"`
	Text   string `json:"text"`
}

// TickerInsights carries the readings for one report row
type TickerInsights struct {
	Symbol   string    `json:"symbol"`
	Insights []Insight `json:"insights,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Interpret turns every report row into threshold-based sentences. Rows that
// failed to fetch keep their error and get no readings; undefined metrics
// get an explicit unavailable sentence rather than being skipped.
func Interpret(report *metrics.Report) []TickerInsights {
	out := make([]TickerInsights, 0, len(report.Rows))
	for _, row := range report.Rows {
		if row.Error != "" {
			out = append(out, TickerInsights{Symbol: row.Symbol, Error: row.Error})
			continue
		}
		out = append(out, TickerInsights{
			Symbol: row.Symbol,
			Insights: []Insight{
				{"Ann. Return", interpretAnnReturn(row.AnnualizedReturn, report.BenchmarkAnnualizedReturn)},
				{"Volatility", interpretVolatility(row.AnnualizedVolatility)},
				{"Sharpe", interpretSharpe(row.SharpeRatio)},
				{"Sortino", interpretSortino(row.SortinoRatio)},
				{"Max Drawdown", interpretMaxDrawdown(row.MaxDrawdown)},
				{"Tracking Error", interpretTrackingError(row.TrackingError)},
				{"Alpha", interpretAlpha(row.Alpha)},
				{"Beta", interpretBeta(row.Beta)},
				{"R²", interpretRSquared(row.RSquared)},
			},
		})
	}
	return out
}

func pct(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

func num(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func interpretAnnReturn(v, bench *float64) string {
	if v == nil {
		return "Annualized return unavailable."
	}
	if bench == nil {
		return fmt.Sprintf("Ann. Return=%s.", pct(v))
	}
	diff := *v - *bench
	sign := "above"
	if diff < 0 {
		sign = "below"
	}
	absDiff := math.Abs(diff)
	return fmt.Sprintf("Ann. Return=%s (%s %s benchmark).", pct(v), pct(&absDiff), sign)
}

func interpretVolatility(v *float64) string {
	switch {
	case v == nil:
		return "Volatility unavailable."
	case *v < 0.10:
		return fmt.Sprintf("Vol=%s: low volatility.", pct(v))
	case *v < 0.20:
		return fmt.Sprintf("Vol=%s: moderate volatility.", pct(v))
	default:
		return fmt.Sprintf("Vol=%s: high volatility.", pct(v))
	}
}

func interpretSharpe(v *float64) string {
	switch {
	case v == nil:
		return "Sharpe unavailable."
	case *v < 0:
		return fmt.Sprintf("Sharpe=%s: risk-adjusted performance below risk-free.", num(v))
	case *v < 0.5:
		return fmt.Sprintf("Sharpe=%s: low risk-adjusted return.", num(v))
	case *v < 1.0:
		return fmt.Sprintf("Sharpe=%s: fair.", num(v))
	case *v < 2.0:
		return fmt.Sprintf("Sharpe=%s: good.", num(v))
	default:
		return fmt.Sprintf("Sharpe=%s: excellent.", num(v))
	}
}

func interpretSortino(v *float64) string {
	switch {
	case v == nil:
		return "Sortino unavailable."
	case *v < 0:
		return fmt.Sprintf("Sortino=%s: downside-adjusted return is poor.", num(v))
	case *v < 0.5:
		return fmt.Sprintf("Sortino=%s: low.", num(v))
	case *v < 1.0:
		return fmt.Sprintf("Sortino=%s: fair.", num(v))
	case *v < 2.0:
		return fmt.Sprintf("Sortino=%s: good.", num(v))
	default:
		return fmt.Sprintf("Sortino=%s: excellent.", num(v))
	}
}

func interpretMaxDrawdown(v *float64) string {
	switch {
	case v == nil:
		return "Max drawdown unavailable."
	case *v > -0.10:
		return fmt.Sprintf("MaxDD=%s: shallow drawdowns.", pct(v))
	case *v > -0.30:
		return fmt.Sprintf("MaxDD=%s: typical equity drawdowns.", pct(v))
	default:
		return fmt.Sprintf("MaxDD=%s: deep drawdowns; higher pain risk.", pct(v))
	}
}

func interpretTrackingError(v *float64) string {
	switch {
	case v == nil:
		return "Tracking error unavailable."
	case *v < 0.03:
		return fmt.Sprintf("TE=%s: closely tracks the benchmark.", pct(v))
	case *v < 0.06:
		return fmt.Sprintf("TE=%s: moderate deviation vs benchmark.", pct(v))
	default:
		return fmt.Sprintf("TE=%s: large active risk vs benchmark.", pct(v))
	}
}

func interpretAlpha(v *float64) string {
	switch {
	case v == nil:
		return "Alpha unavailable."
	case *v > 0.02:
		return fmt.Sprintf("α=%s: meaningful outperformance vs benchmark.", pct(v))
	case *v > 0.0:
		return fmt.Sprintf("α=%s: slight outperformance.", pct(v))
	case *v < -0.02:
		return fmt.Sprintf("α=%s: meaningful underperformance.", pct(v))
	default:
		return fmt.Sprintf("α=%s: roughly in line with benchmark.", pct(v))
	}
}

func interpretBeta(v *float64) string {
	switch {
	case v == nil:
		return "Beta unavailable."
	case *v < 0.8:
		return fmt.Sprintf("β=%s: defensive vs market (less sensitive).", num(v))
	case *v <= 1.2:
		return fmt.Sprintf("β=%s: market-like sensitivity.", num(v))
	default:
		return fmt.Sprintf("β=%s: aggressive vs market (more sensitive).", num(v))
	}
}

func interpretRSquared(v *float64) string {
	switch {
	case v == nil:
		return "R² unavailable: insufficient overlap with the benchmark."
	case *v >= 0.8:
		return "High linkage: behaves much like the benchmark; limited diversification."
	case *v >= 0.5:
		return "Moderate linkage: both market and asset-specific drivers."
	default:
		return "Low linkage: moves differently from the benchmark; may add diversification."
	}
}
