package settings

import "errors"

var (
	errUnknownKey      = errors.New("unknown setting key")
	errEmptyBenchmark  = errors.New("benchmark symbol must not be empty")
	errBadPeriod       = errors.New("period must be one of 1y, 3y, 5y")
	errBadRiskFreeRate = errors.New("risk-free rate must be a decimal in [0, 1)")
)
