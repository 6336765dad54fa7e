package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Torido-Mir/CxC2026/internal/geocode"
)

// Config holds application configuration
type Config struct {
	Port             string
	DataDir          string
	GeocodeCachePath string
	ChatBackendURL   string
	NominatimURL     string
	SearchViewbox    geocode.Viewbox
	AutoGridZoom     float64
	AuthEnabled      bool
	JWTSecret        string
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", ":8080"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		GeocodeCachePath: getEnv("GEOCODE_CACHE_PATH", "./data/geocode.db"),
		ChatBackendURL:   os.Getenv("CHAT_BACKEND_URL"),
		NominatimURL:     getEnv("NOMINATIM_URL", geocode.DefaultBaseURL),
		AutoGridZoom:     getEnvFloat("AUTO_GRID_ZOOM", 13),
		AuthEnabled:      getEnvBool("AUTH_ENABLED", false),
		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
	}

	// SEARCH_VIEWBOX is west,north,east,south; defaults to the Halton
	// Region study area
	cfg.SearchViewbox = parseViewbox(getEnv("SEARCH_VIEWBOX", "-80.2,43.75,-79.65,43.3"))

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func parseViewbox(s string) geocode.Viewbox {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		log.Printf("[Config] invalid SEARCH_VIEWBOX %q, search will be unbounded", s)
		return geocode.Viewbox{}
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			log.Printf("[Config] invalid SEARCH_VIEWBOX %q, search will be unbounded", s)
			return geocode.Viewbox{}
		}
		vals[i] = f
	}
	return geocode.Viewbox{West: vals[0], North: vals[1], East: vals[2], South: vals[3]}
}
