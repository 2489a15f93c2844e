package formulas

// CalculateAlphaBeta runs an ordinary least-squares regression of a return
// series on a benchmark return series.
//
//	Beta  = Cov(returns, benchmark) / Var(benchmark)
//	Alpha = Mean(returns) - Beta × Mean(benchmark)
//
// Alpha is the periodic (daily) intercept; annualization is the caller's
// concern. Both series must already be aligned on the same date index.
//
// Returns nil, nil when the series differ in length, hold fewer than 2
// observations, or the benchmark variance is zero (a flat benchmark admits
// no regression).
func CalculateAlphaBeta(returns, benchmarkReturns []float64) (alpha, beta *float64) {
	if len(returns) != len(benchmarkReturns) || len(returns) < 2 {
		return nil, nil
	}

	benchVariance := Variance(benchmarkReturns)
	if benchVariance < epsilon {
		return nil, nil
	}

	b := Covariance(returns, benchmarkReturns) / benchVariance
	a := Mean(returns) - b*Mean(benchmarkReturns)

	return &a, &b
}

// CalculateRSquared calculates the squared Pearson correlation between a
// return series and a benchmark return series. The result lives in [0, 1].
//
// Returns nil when the series differ in length, hold fewer than 2
// observations, or either side has zero variance (correlation undefined).
func CalculateRSquared(returns, benchmarkReturns []float64) *float64 {
	if len(returns) != len(benchmarkReturns) || len(returns) < 2 {
		return nil
	}

	if Variance(returns) < epsilon || Variance(benchmarkReturns) < epsilon {
		return nil
	}

	r := Correlation(returns, benchmarkReturns)
	r2 := r * r
	if r2 > 1 {
		r2 = 1
	}

	return &r2
}

// CalculateTrackingError calculates the annualized standard deviation of the
// difference between a return series and a benchmark return series.
//
//	Tracking Error = StdDev(returns - benchmark) × sqrt(252)
//
// A series that matches its benchmark exactly tracks with error 0; that is a
// defined value, not a flag.
//
// Returns nil when the series differ in length or hold fewer than 2
// observations.
func CalculateTrackingError(returns, benchmarkReturns []float64) *float64 {
	if len(returns) != len(benchmarkReturns) || len(returns) < 2 {
		return nil
	}

	diffs := make([]float64, len(returns))
	for i := range returns {
		diffs[i] = returns[i] - benchmarkReturns[i]
	}

	te := AnnualizedVolatility(diffs)
	return &te
}
