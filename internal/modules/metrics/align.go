package metrics

import (
	"sort"
	"time"

	"github.com/kallias/watchboard/internal/domain"
)

// datedReturns maps a trading day to the simple return realized on it.
// Each return carries the date of the later of its two closes.
type datedReturns map[time.Time]float64

// dailyReturns converts a price series into dated simple returns. A zero
// previous close yields no return for that day; the chart client filters
// such bars out upstream.
func dailyReturns(points []domain.PricePoint) datedReturns {
	returns := make(datedReturns, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1].AdjClose
		if prev == 0 {
			continue
		}
		returns[points[i].Date] = (points[i].AdjClose - prev) / prev
	}
	return returns
}

// alignReturns intersects two dated return sets and returns the paired
// values in chronological order. Days present in only one set are dropped:
// mixing exchanges with different holidays must not misalign the pairs.
func alignReturns(a, b datedReturns) ([]float64, []float64) {
	dates := make([]time.Time, 0, len(a))
	for date := range a {
		if _, ok := b[date]; ok {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	left := make([]float64, len(dates))
	right := make([]float64, len(dates))
	for i, date := range dates {
		left[i] = a[date]
		right[i] = b[date]
	}
	return left, right
}
