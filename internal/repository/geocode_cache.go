package repository

import (
	"database/sql"
	"fmt"
	"strings"
)

// GeocodeCache handles database operations for cached place-name lookups
type GeocodeCache struct {
	db *sql.DB
}

// NewGeocodeCache creates a new geocode cache repository
func NewGeocodeCache(db *sql.DB) *GeocodeCache {
	return &GeocodeCache{db: db}
}

// CachedPlace is one stored lookup result
type CachedPlace struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached result for a query, or nil on a miss
func (r *GeocodeCache) Get(query string) (*CachedPlace, error) {
	row := r.db.QueryRow(
		"SELECT lat, lng, display_name FROM geocode_cache WHERE query = ?",
		normalize(query),
	)

	var place CachedPlace
	if err := row.Scan(&place.Lat, &place.Lng, &place.DisplayName); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}
	return &place, nil
}

// Put stores a lookup result, replacing any previous entry for the query
func (r *GeocodeCache) Put(query string, place CachedPlace) error {
	_, err := r.db.Exec(
		"INSERT OR REPLACE INTO geocode_cache (query, lat, lng, display_name) VALUES (?, ?, ?, ?)",
		normalize(query), place.Lat, place.Lng, place.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return nil
}
