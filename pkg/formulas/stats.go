package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization base for daily series.
const TradingDaysPerYear = 252

// epsilon bounds float noise in variance terms. A constant-return series
// produces a standard deviation on the order of 1e-17, not exactly zero;
// anything below this threshold must read as zero volatility.
const epsilon = 1e-12

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Correlation calculates the Pearson correlation coefficient between two datasets
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// Covariance calculates the covariance between two datasets
func Covariance(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// CalculateReturns converts prices to simple daily returns
// Returns[i] = (Price[i] - Price[i-1]) / Price[i-1]
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}

	return returns
}

// AnnualizedVolatility calculates annualized volatility from daily returns
// Formula: Std Dev of Daily Returns × sqrt(252 trading days)
func AnnualizedVolatility(dailyReturns []float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}

	stdDev := StdDev(dailyReturns)
	if stdDev < epsilon {
		return 0
	}
	return stdDev * math.Sqrt(TradingDaysPerYear)
}

// AnnualizedReturn calculates the compound annual growth rate of a price series
// Formula: (Last / First) ^ (252 / (n - 1)) - 1
//
// Returns nil when fewer than 2 prices or the series starts at or below zero.
func AnnualizedReturn(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}

	first := prices[0]
	last := prices[len(prices)-1]
	if first <= 0 || last <= 0 {
		return nil
	}

	exponent := TradingDaysPerYear / float64(len(prices)-1)
	cagr := math.Pow(last/first, exponent) - 1

	return &cagr
}
