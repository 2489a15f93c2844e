package formulas

// CalculateMaxDrawdown calculates the maximum drawdown of a price series.
//
// Drawdown Formula:
//
//	Drawdown[t] = Price[t] / RunningPeak[0..t] - 1
//	Max Drawdown = minimum over all t
//
// The running peak never resets. The result is a non-positive decimal:
// -0.25 means the worst trough sat 25% below the preceding peak, and 0 means
// the series never traded below a prior peak.
//
// Returns nil when fewer than 2 prices.
func CalculateMaxDrawdown(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}

	maxDrawdown := 0.0
	peak := prices[0]

	for _, price := range prices {
		if price > peak {
			peak = price
		}

		if peak > 0 {
			drawdown := price/peak - 1
			if drawdown < maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return &maxDrawdown
}
