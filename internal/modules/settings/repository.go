// Package settings stores user-tunable defaults as key-value pairs:
// the default benchmark, the default history period, and the risk-free
// rate used by ratio computations. Values stored here take precedence
// over environment configuration.
package settings

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Known setting keys.
const (
	KeyDefaultBenchmark = "default_benchmark"
	KeyDefaultPeriod    = "default_period"
	KeyRiskFreeRate     = "risk_free_rate"
)

// KnownKeys lists every key the API accepts.
var KnownKeys = []string{KeyDefaultBenchmark, KeyDefaultPeriod, KeyRiskFreeRate}

// Repository handles settings database operations. Values are stored as
// strings; typed getters convert on the way out.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new settings repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "settings").Logger(),
	}
}

// Get retrieves a setting value by key.
// Returns nil if the setting doesn't exist (not an error).
func (r *Repository) Get(key string) (*string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return &value, nil
}

// GetFloat retrieves a setting and parses it as a float64.
// Returns nil when the setting is missing or does not parse.
func (r *Repository) GetFloat(key string) (*float64, error) {
	value, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	f, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		r.log.Warn().Str("key", key).Str("value", *value).Msg("Setting is not numeric")
		return nil, nil
	}
	return &f, nil
}

// Set upserts a setting value
func (r *Repository) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	r.log.Debug().Str("key", key).Msg("Setting updated")
	return nil
}

// GetAll returns every stored setting as a key-value map
func (r *Repository) GetAll() (map[string]string, error) {
	rows, err := r.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		all[key] = value
	}

	return all, rows.Err()
}
