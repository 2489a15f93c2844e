package domain

import "errors"

// Sentinel errors shared across modules. Callers wrap them with context via
// fmt.Errorf("...: %w", err) and branch with errors.Is.
var (
	// ErrInsufficientData marks a series with fewer observations than the
	// computation requires.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput marks input a computation cannot run on, such as a
	// zero-variance benchmark.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNotFound marks a symbol the data source does not know, or a record
	// missing from storage.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited marks data-source throttling. The request can be
	// retried later.
	ErrRateLimited = errors.New("rate limited")
)
