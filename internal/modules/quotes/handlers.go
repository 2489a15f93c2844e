package quotes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/symbols"
	"github.com/rs/zerolog"
)

// Handler handles quote history HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new quotes handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "quotes").Logger(),
	}
}

// HandleHistory handles GET /api/quotes/history
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	symbol := symbols.Normalize(r.URL.Query().Get("symbol"))
	if symbol == "" {
		h.writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	period := domain.Period(r.URL.Query().Get("range"))
	if period == "" {
		period = domain.Period1Y
	}
	if !period.IsValid() {
		h.writeError(w, http.StatusBadRequest, "range must be one of 1y, 3y, 5y")
		return
	}

	smaWindow := queryInt(r, "sma")
	rsiPeriod := queryInt(r, "rsi")
	if smaWindow < 0 || rsiPeriod < 0 {
		h.writeError(w, http.StatusBadRequest, "sma and rsi must be non-negative integers")
		return
	}

	resp, err := h.service.History(symbol, period, smaWindow, rsiPeriod)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.writeError(w, http.StatusNotFound, "unknown symbol "+symbol)
		case errors.Is(err, domain.ErrInsufficientData):
			h.writeError(w, http.StatusUnprocessableEntity, "not enough data to chart "+symbol)
		case errors.Is(err, domain.ErrRateLimited):
			h.writeError(w, http.StatusTooManyRequests, "data source is throttling, try again later")
		default:
			h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to fetch history")
			h.writeError(w, http.StatusBadGateway, "failed to fetch history")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter; absent reads as 0,
// junk or a negative value as -1 so the caller can reject it
func queryInt(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
