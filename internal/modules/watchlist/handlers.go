package watchlist

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kallias/watchboard/internal/domain"
	"github.com/rs/zerolog"
)

// maxImportBytes caps watchlist import documents.
const maxImportBytes = 1 << 20

// Handler handles watchlist HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new watchlist handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "watchlist").Logger(),
	}
}

// AddRequest is the POST body for adding a symbol
type AddRequest struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// HandleList handles GET /api/watchlist
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.URL.Query().Get("category"))
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to list watchlist")
		h.writeError(w, http.StatusInternalServerError, "failed to list watchlist")
		return
	}

	if entries == nil {
		entries = []Entry{}
	}
	h.writeJSON(w, http.StatusOK, entries)
}

// HandleAdd handles POST /api/watchlist
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Add(req.Symbol, req.Name, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicate):
			h.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrUnknownCategory), errors.Is(err, domain.ErrDegenerateInput):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error().Err(err).Str("symbol", req.Symbol).Msg("Failed to add watchlist entry")
			h.writeError(w, http.StatusInternalServerError, "failed to add watchlist entry")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, entry)
}

// HandleRemove handles DELETE /api/watchlist/{symbol}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	if err := h.service.Remove(symbol); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to remove watchlist entry")
		h.writeError(w, http.StatusInternalServerError, "failed to remove watchlist entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleExport handles GET /api/watchlist/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.ExportYAML()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to export watchlist")
		h.writeError(w, http.StatusInternalServerError, "failed to export watchlist")
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="watchlist.yaml"`)
	w.Write(doc)
}

// HandleImport handles POST /api/watchlist/import
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	count, err := h.service.ImportYAML(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]int{"imported": count})
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
