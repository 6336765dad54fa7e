package database

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. The cache is keyed by the normalized query
// text; repeat searches skip the network entirely.
func Migrate(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS geocode_cache (
			query TEXT PRIMARY KEY,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			display_name TEXT NOT NULL,
			cached_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create geocode_cache table: %w", err)
	}
	return nil
}
