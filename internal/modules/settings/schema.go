package settings

import "database/sql"

// Schema holds the settings key-value table.
const Schema = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema ensures the settings table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
