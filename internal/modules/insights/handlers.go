package insights

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/modules/metrics"
	"github.com/rs/zerolog"
)

// Handler handles HTTP requests for report insights
type Handler struct {
	metrics *metrics.Service
	log     zerolog.Logger
}

// NewHandler creates a new insights handler
func NewHandler(metricsService *metrics.Service, log zerolog.Logger) *Handler {
	return &Handler{
		metrics: metricsService,
		log:     log.With().Str("handler", "insights").Logger(),
	}
}

type insightsResponse struct {
	Report   *metrics.Report  `json:"report"`
	Insights []TickerInsights `json:"insights"`
}

// HandleInsights handles POST /api/metrics/insights. The body is the same
// report request the plain report endpoint takes; the response carries the
// computed report plus its interpretations.
func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	var req metrics.ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.metrics.BuildReport(req)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, insightsResponse{
		Report:   report,
		Insights: Interpret(report),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, metrics.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
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
