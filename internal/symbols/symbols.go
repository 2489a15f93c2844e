package symbols

import "strings"

// aliases maps common index names to their Yahoo Finance tickers
var aliases = map[string]string{
	// S&P 500
	"S&P":     "^GSPC",
	"S&P 500": "^GSPC",
	"SP500":   "^GSPC",
	"SPX":     "^GSPC",
	"GSPC":    "^GSPC",
	"^SPX":    "^GSPC",

	// US indices
	"NASDAQ":       "^IXIC",
	"NASDAQ 100":   "^NDX",
	"NDX":          "^NDX",
	"DOW":          "^DJI",
	"DJIA":         "^DJI",
	"RUSSELL 2000": "^RUT",
	"RUT":          "^RUT",

	// Canada
	"TSX":           "^GSPTSE",
	"TSX COMPOSITE": "^GSPTSE",

	// India
	"NIFTY 50": "^NSEI",
	"SENSEX":   "^BSESN",
}

// Normalize converts user input to a canonical Yahoo Finance ticker.
// Input is trimmed and uppercased, then mapped through the index alias
// table. Unknown symbols pass through unchanged.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	u := strings.ToUpper(s)
	u = strings.ReplaceAll(u, "’", "'")

	if canonical, ok := aliases[u]; ok {
		return canonical
	}
	return u
}

// ParseList splits free-form ticker input on commas and newlines,
// normalizes each entry, and drops duplicates while preserving first-seen
// order. Spaces are not separators: multi-word aliases like "S&P 500" must
// survive as one entry.
func ParseList(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(strings.ReplaceAll(raw, "\n", ","), ",")

	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		sym := Normalize(part)
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}

	return out
}
