package metrics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// csvHeader is the stable column order of the CSV export. Downstream
// spreadsheets key on these names, so the order must not change.
var csvHeader = []string{
	"Ticker",
	"Annualized Return",
	"Annualized Volatility",
	"Sharpe Ratio",
	"Sortino Ratio",
	"Max Drawdown",
	"Tracking Error",
	"Alpha",
	"Beta",
	"R-Squared",
	"Observations",
	"Overlap",
	"Flags",
	"Error",
}

// ExportCSV renders a report as CSV, one row per ticker. Undefined metrics
// become empty cells, never "NaN".
func ExportCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.Symbol,
			csvCell(row.AnnualizedReturn),
			csvCell(row.AnnualizedVolatility),
			csvCell(row.SharpeRatio),
			csvCell(row.SortinoRatio),
			csvCell(row.MaxDrawdown),
			csvCell(row.TrackingError),
			csvCell(row.Alpha),
			csvCell(row.Beta),
			csvCell(row.RSquared),
			strconv.Itoa(row.Observations),
			strconv.Itoa(row.Overlap),
			strings.Join(row.Flags, ";"),
			row.Error,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for %s: %w", row.Symbol, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func csvCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}
