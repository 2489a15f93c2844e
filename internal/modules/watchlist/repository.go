package watchlist

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kallias/watchboard/internal/database"
	"github.com/rs/zerolog"
)

// Repository handles watchlist database operations
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new watchlist repository
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "watchlist").Logger(),
	}
}

// List returns all entries ordered by category then symbol
func (r *Repository) List() ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, name, category, created_at
		FROM watchlist
		ORDER BY category, symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByCategory returns the entries of a single category ordered by symbol
func (r *Repository) ListByCategory(category string) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, name, category, created_at
		FROM watchlist
		WHERE category = ?
		ORDER BY symbol`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist category: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetBySymbol returns an entry by symbol, or nil when not watched
func (r *Repository) GetBySymbol(symbol string) (*Entry, error) {
	row := r.db.QueryRow(`
		SELECT id, symbol, name, category, created_at
		FROM watchlist
		WHERE symbol = ?`, symbol)

	var e Entry
	err := row.Scan(&e.ID, &e.Symbol, &e.Name, &e.Category, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
	}

	return &e, nil
}

// Insert adds a new entry
func (r *Repository) Insert(symbol, name, category string) error {
	_, err := r.db.Exec(`
		INSERT INTO watchlist (symbol, name, category, created_at)
		VALUES (?, ?, ?, ?)`,
		symbol, name, category, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert watchlist entry %s: %w", symbol, err)
	}

	r.log.Debug().Str("symbol", symbol).Str("category", category).Msg("Watchlist entry added")
	return nil
}

// Delete removes an entry by symbol and reports whether it existed
func (r *Repository) Delete(symbol string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM watchlist WHERE symbol = ?", symbol)
	if err != nil {
		return false, fmt.Errorf("failed to delete watchlist entry %s: %w", symbol, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// UpsertMany writes entries in one transaction, moving already-watched
// symbols to the incoming category. An empty incoming name keeps the stored
// one. Used by YAML import.
func (r *Repository) UpsertMany(entries []Entry) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO watchlist (symbol, name, category, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(symbol) DO UPDATE SET
				category = excluded.category,
				name = CASE WHEN excluded.name = '' THEN watchlist.name ELSE excluded.name END`)
		if err != nil {
			return fmt.Errorf("failed to prepare upsert: %w", err)
		}
		defer stmt.Close()

		now := time.Now().UTC()
		for _, e := range entries {
			if _, err := stmt.Exec(e.Symbol, e.Name, e.Category, now); err != nil {
				return fmt.Errorf("failed to upsert %s: %w", e.Symbol, err)
			}
		}

		return nil
	})
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.Name, &e.Category, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
