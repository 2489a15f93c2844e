package watchlist

import "database/sql"

// Schema holds the watchlist table. Symbols are unique across categories.
const Schema = `
CREATE TABLE IF NOT EXISTS watchlist (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    symbol TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_watchlist_category ON watchlist(category);
`

// InitSchema ensures the watchlist table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
