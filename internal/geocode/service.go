package geocode

import (
	"context"
	"errors"
	"log"

	"github.com/Torido-Mir/CxC2026/internal/repository"
)

// ErrNotFound is returned when no place matches the query
var ErrNotFound = errors.New("no results found")

// Service resolves place names, consulting the sqlite cache before the
// network
type Service struct {
	client *Client
	cache  *repository.GeocodeCache
}

// NewService creates a geocoding service. The cache may be nil, in which
// case every lookup goes to the network.
func NewService(client *Client, cache *repository.GeocodeCache) *Service {
	return &Service{client: client, cache: cache}
}

// Resolve geocodes a free-form query
func (s *Service) Resolve(ctx context.Context, query string) (*Place, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(query)
		if err != nil {
			log.Printf("[Geocode] cache read failed: %v", err)
		} else if cached != nil {
			return &Place{Lat: cached.Lat, Lng: cached.Lng, DisplayName: cached.DisplayName}, nil
		}
	}

	place, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		if err := s.cache.Put(query, repository.CachedPlace{
			Lat:         place.Lat,
			Lng:         place.Lng,
			DisplayName: place.DisplayName,
		}); err != nil {
			log.Printf("[Geocode] cache write failed: %v", err)
		}
	}
	return place, nil
}
