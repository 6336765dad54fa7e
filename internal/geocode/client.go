package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public Nominatim endpoint
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	defaultTimeout = 10 * time.Second
	userAgent      = "uhi-explorer/1.0"
)

// Viewbox bounds a search to a region of interest. Coordinates follow the
// Nominatim order: left (west), top (north), right (east), bottom (south).
type Viewbox struct {
	West  float64
	North float64
	East  float64
	South float64
}

func (v Viewbox) param() string {
	return fmt.Sprintf("%g,%g,%g,%g", v.West, v.North, v.East, v.South)
}

// IsZero reports whether no viewbox was configured
func (v Viewbox) IsZero() bool {
	return v == Viewbox{}
}

// Place is a resolved location
type Place struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Client queries a Nominatim-compatible geocoding service
type Client struct {
	baseURL    string
	viewbox    Viewbox
	httpClient *http.Client
}

// NewClient creates a geocoding client. The viewbox, when non-zero, is used
// for a bounded first pass before falling back to a global search.
func NewClient(baseURL string, viewbox Viewbox) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		viewbox: viewbox,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Nominatim returns lat/lon as strings
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search resolves a free-form query. When the client has a viewbox the first
// attempt is restricted to it; an empty result retries without bounds so
// queries outside the study area still resolve.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	if !c.viewbox.IsZero() {
		place, err := c.search(ctx, query, true)
		if err != nil {
			return nil, err
		}
		if place != nil {
			return place, nil
		}
	}
	return c.search(ctx, query, false)
}

func (c *Client) search(ctx context.Context, query string, bounded bool) (*Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	if bounded {
		params.Set("viewbox", c.viewbox.param())
		params.Set("bounded", "1")
	}

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocoding latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocoding longitude: %w", err)
	}

	return &Place{Lat: lat, Lng: lng, DisplayName: results[0].DisplayName}, nil
}
