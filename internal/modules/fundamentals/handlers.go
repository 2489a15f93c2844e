package fundamentals

import (
	"encoding/json"
	"net/http"

	"github.com/kallias/watchboard/internal/symbols"
	"github.com/rs/zerolog"
)

// Handler handles HTTP requests for fundamentals
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new fundamentals handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "fundamentals").Logger(),
	}
}

// HandleGet handles GET /api/fundamentals?symbols=AAPL,MSFT
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tickers := symbols.ParseList(r.URL.Query().Get("symbols"))
	if len(tickers) == 0 {
		h.writeError(w, http.StatusBadRequest, "symbols parameter is required")
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.Get(tickers))
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
