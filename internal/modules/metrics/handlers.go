package metrics

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kallias/watchboard/internal/domain"
	"github.com/rs/zerolog"
)

// Handler handles HTTP requests for metrics reports
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new metrics handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "metrics").Logger(),
	}
}

// HandleReport handles POST /api/metrics/report
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := h.service.BuildReport(req)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleReportCSV handles POST /api/metrics/report/csv
func (h *Handler) HandleReportCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := h.service.BuildReport(req)
	if err != nil {
		h.writeError(w, statusFor(err), err.Error())
		return
	}

	data, err := ExportCSV(report)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to render CSV")
		h.writeError(w, http.StatusInternalServerError, "failed to render CSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="metrics_report.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV response")
	}
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (ReportRequest, bool) {
	var req ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return ReportRequest{}, false
	}
	return req, true
}

// statusFor maps engine errors onto HTTP statuses. Upstream data problems
// read as a bad gateway because the server itself is healthy.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
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
