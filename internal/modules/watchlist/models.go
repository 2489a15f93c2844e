package watchlist

import "time"

// Categories is the fixed set of watchlist buckets, in display order.
var Categories = []string{
	"US Equities",
	"International Equities",
	"Emerging Market Equities",
	"Global Factor Equities",
	"Canada Equities",
	"Long-Duration Bonds",
	"Aggregate Bonds",
	"Short-Term Credit",
	"Gold",
	"Silver",
}

// DefaultCategory is where entries land when no category is given.
const DefaultCategory = "US Equities"

// Entry is one watched symbol
type Entry struct {
	ID        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidCategory reports whether the category is one of the fixed buckets
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
