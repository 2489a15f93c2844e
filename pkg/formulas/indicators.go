package formulas

import (
	"github.com/markcheno/go-talib"
)

// CalculateSMASeries calculates a simple moving average over closing prices.
// The output is parallel to the input; the first window-1 positions are the
// warm-up region and hold zeros.
//
// Returns nil when the series is shorter than the window or the window is
// not positive.
func CalculateSMASeries(closes []float64, window int) []float64 {
	if window <= 0 || len(closes) < window {
		return nil
	}
	return talib.Sma(closes, window)
}

// CalculateRSISeries calculates the Relative Strength Index over closing
// prices.
//
// RSI Formula:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss over N periods
//
// The output is parallel to the input; the first 'period' positions are the
// warm-up region and hold zeros.
//
// Returns nil when the series holds fewer than period+1 prices.
func CalculateRSISeries(closes []float64, period int) []float64 {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}
	return talib.Rsi(closes, period)
}
