package settings

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/symbols"
	"github.com/rs/zerolog"
)

// Handler provides HTTP handlers for settings endpoints
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new settings handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "settings").Logger(),
	}
}

// SettingUpdate is the PUT request body
type SettingUpdate struct {
	Value string `json:"value"`
}

// HandleGetAll handles GET /api/settings
func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.GetAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get settings")
		h.writeError(w, http.StatusInternalServerError, "failed to get settings")
		return
	}

	h.writeJSON(w, http.StatusOK, all)
}

// HandleUpdate handles PUT /api/settings/{key}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var update SettingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	value, err := validateSetting(key, update.Value)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Set(key, value); err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("Failed to update setting")
		h.writeError(w, http.StatusInternalServerError, "failed to update setting")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

// validateSetting checks a key/value pair and returns the canonical value to
// store.
func validateSetting(key, value string) (string, error) {
	switch key {
	case KeyDefaultBenchmark:
		sym := symbols.Normalize(value)
		if sym == "" {
			return "", errEmptyBenchmark
		}
		return sym, nil

	case KeyDefaultPeriod:
		if !domain.Period(value).IsValid() {
			return "", errBadPeriod
		}
		return value, nil

	case KeyRiskFreeRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f >= 1 {
			return "", errBadRiskFreeRate
		}
		return value, nil
	}

	return "", errUnknownKey
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
