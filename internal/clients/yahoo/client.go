package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// quoteFields is the field list requested from the quote API
const quoteFields = "symbol,longName,shortName,quoteType,regularMarketPrice,regularMarketChangePercent," +
	"trailingPE,forwardPE,debtToEquity,dividendYield,trailingAnnualDividendYield," +
	"profitMargins,netMargins,annualReportExpenseRatio,expenseRatio,fundExpenseRatio"

// Client is a Yahoo Finance API client
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client. An empty baseURL selects the
// public host; tests point it at a local server.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "yahoo").Logger(),
	}
}

// GetHistoricalPrices fetches the daily adjusted-close series for a symbol
// over a period. Null bars are skipped, dates are normalized to UTC midnight,
// and the result is strictly increasing by date.
//
// Unknown symbols map to domain.ErrNotFound, throttling to
// domain.ErrRateLimited.
func (c *Client) GetHistoricalPrices(symbol string, period domain.Period) ([]domain.PricePoint, error) {
	params := url.Values{}
	params.Add("interval", "1d")
	params.Add("range", string(period))

	reqURL := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + params.Encode()

	body, err := c.get(reqURL, symbol)
	if err != nil {
		return nil, err
	}

	var result chartResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse chart response: %w", err)
	}

	if result.Chart.Error != nil {
		if strings.EqualFold(result.Chart.Error.Code, "not found") {
			return nil, fmt.Errorf("%s: %s: %w", symbol, result.Chart.Error.Description, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("chart API error for %s: %s: %s", symbol, result.Chart.Error.Code, result.Chart.Error.Description)
	}

	if len(result.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s: %w", symbol, domain.ErrNotFound)
	}

	chartData := result.Chart.Result[0]
	timestamps := chartData.Timestamp
	if len(chartData.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for %s: %w", symbol, domain.ErrNotFound)
	}

	closes := chartData.Indicators.Quote[0].Close

	// Adjusted closes when available, raw closes otherwise
	var adjCloses []float64
	if len(chartData.Indicators.AdjClose) > 0 {
		adjCloses = chartData.Indicators.AdjClose[0].AdjClose
	}

	points := make([]domain.PricePoint, 0, len(timestamps))
	for i, ts := range timestamps {
		var price float64
		if i < len(adjCloses) && adjCloses[i] != 0 {
			price = adjCloses[i]
		} else if i < len(closes) {
			price = closes[i]
		}

		// Null bars decode as zero
		if price == 0 {
			continue
		}

		t := time.Unix(ts, 0).UTC()
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

		// Intraday bars can land on the date of the last daily bar;
		// the later value wins so the invariant of unique, strictly
		// increasing dates holds
		if n := len(points); n > 0 && !points[n-1].Date.Before(date) {
			points[n-1].AdjClose = price
			continue
		}

		points = append(points, domain.PricePoint{Date: date, AdjClose: price})
	}

	c.log.Debug().
		Str("symbol", symbol).
		Str("period", string(period)).
		Int("count", len(points)).
		Msg("Fetched historical prices")

	return points, nil
}

// GetQuote fetches a raw fundamentals snapshot for a symbol. Percent-like
// fields come back exactly as the API reports them; normalization is the
// fundamentals service's concern.
func (c *Client) GetQuote(symbol string) (*domain.Quote, error) {
	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", quoteFields)

	reqURL := c.baseURL + "/v7/finance/quote?" + params.Encode()

	body, err := c.get(reqURL, symbol)
	if err != nil {
		return nil, err
	}

	var result quoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse quote response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote API error for %s: %s: %s", symbol, result.QuoteResponse.Error.Code, result.QuoteResponse.Error.Description)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote for %s: %w", symbol, domain.ErrNotFound)
	}

	info := result.QuoteResponse.Result[0]

	longName := getString(info, "longName", "")
	if longName == "" {
		longName = getString(info, "shortName", "")
	}

	quote := &domain.Quote{
		Symbol:          symbol,
		LongName:        longName,
		QuoteType:       getString(info, "quoteType", ""),
		Price:           getFloat64(info, "regularMarketPrice"),
		ChangePercent:   getFloat64(info, "regularMarketChangePercent"),
		TrailingPE:      getFloat64(info, "trailingPE"),
		ForwardPE:       getFloat64(info, "forwardPE"),
		DebtToEquity:    getFloat64(info, "debtToEquity"),
		DividendYield:   pickFloat64(info, "dividendYield", "trailingAnnualDividendYield"),
		NetProfitMargin: pickFloat64(info, "profitMargins", "netMargins"),
		ExpenseRatio:    pickFloat64(info, "annualReportExpenseRatio", "expenseRatio", "fundExpenseRatio"),
	}

	c.log.Debug().Str("symbol", symbol).Msg("Fetched quote")

	return quote, nil
}

// get performs a GET with browser headers and maps HTTP status codes onto
// the domain error kinds.
func (c *Client) get(reqURL, symbol string) ([]byte, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("symbol %s: %w", symbol, domain.ErrNotFound)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("symbol %s: %w", symbol, domain.ErrRateLimited)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Helper functions to safely extract values from map

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func pickFloat64(m map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		if val := getFloat64(m, key); val != nil {
			return val
		}
	}
	return nil
}

func getString(m map[string]interface{}, key string, defaultVal string) string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}
