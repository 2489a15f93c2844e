package yahoo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
	"chart": {
		"result": [{
			"timestamp": [1704205800, 1704292200, 1704378600, 1704402000],
			"indicators": {
				"quote": [{"close": [100.5, 101.0, null, 103.0]}],
				"adjclose": [{"adjclose": [100.0, null, 102.0, 102.5]}]
			}
		}],
		"error": null
	}
}`

const quoteBody = `{
	"quoteResponse": {
		"result": [{
			"symbol": "SPY",
			"longName": "SPDR S&P 500 ETF Trust",
			"quoteType": "ETF",
			"regularMarketPrice": 512.3,
			"regularMarketChangePercent": -0.42,
			"trailingPE": 26.1,
			"dividendYield": 1.31,
			"annualReportExpenseRatio": 0.0945
		}],
		"error": null
	}
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop())
}

func TestGetHistoricalPrices(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/AAPL")
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1y", r.URL.Query().Get("range"))
		w.Write([]byte(chartBody))
	}))

	points, err := client.GetHistoricalPrices("AAPL", domain.Period1Y)
	require.NoError(t, err)

	// four bars: day two has a null adjclose but a real close, day three's
	// intraday bar lands on the same date as its daily bar
	require.Len(t, points, 3)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, 100.0, points[0].AdjClose)

	// null adjclose falls back to close
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), points[1].Date)
	assert.Equal(t, 101.0, points[1].AdjClose)

	// duplicate date keeps the later bar's value
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), points[2].Date)
	assert.Equal(t, 102.5, points[2].AdjClose)

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Date.After(points[i-1].Date), "dates must be strictly increasing")
	}
}

func TestGetHistoricalPricesErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "http 404",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "http 429",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: domain.ErrRateLimited,
		},
		{
			name:    "embedded not found error",
			status:  http.StatusOK,
			body:    `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "empty result",
			status:  http.StatusOK,
			body:    `{"chart":{"result":[],"error":null}}`,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.GetHistoricalPrices("XXXX", domain.Period1Y)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestGetQuote(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v7/finance/quote")
		assert.Equal(t, "SPY", r.URL.Query().Get("symbols"))
		w.Write([]byte(quoteBody))
	}))

	quote, err := client.GetQuote("SPY")
	require.NoError(t, err)

	assert.Equal(t, "SPY", quote.Symbol)
	assert.Equal(t, "SPDR S&P 500 ETF Trust", quote.LongName)
	assert.Equal(t, "ETF", quote.QuoteType)

	require.NotNil(t, quote.Price)
	assert.InDelta(t, 512.3, *quote.Price, 1e-9)

	require.NotNil(t, quote.TrailingPE)
	assert.InDelta(t, 26.1, *quote.TrailingPE, 1e-9)

	require.NotNil(t, quote.DividendYield)
	assert.InDelta(t, 1.31, *quote.DividendYield, 1e-9)

	require.NotNil(t, quote.ExpenseRatio)
	assert.InDelta(t, 0.0945, *quote.ExpenseRatio, 1e-9)

	// fields the response omits stay nil
	assert.Nil(t, quote.ForwardPE)
	assert.Nil(t, quote.DebtToEquity)
	assert.Nil(t, quote.NetProfitMargin)
}

func TestGetQuoteNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
	}))

	_, err := client.GetQuote("NOSUCH")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
