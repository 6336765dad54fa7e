package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBoundedFirst(t *testing.T) {
	var boundedSeen bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bounded") == "1" {
			boundedSeen = true
			assert.Equal(t, "-79.8,43.9,-78.7,43.4", r.URL.Query().Get("viewbox"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"43.651","lon":"-79.383","display_name":"Toronto, Ontario"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{West: -79.8, North: 43.9, East: -78.7, South: 43.4})
	place, err := client.Search(context.Background(), "toronto")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.True(t, boundedSeen)
	assert.InDelta(t, 43.651, place.Lat, 1e-9)
	assert.InDelta(t, -79.383, place.Lng, 1e-9)
	assert.Equal(t, "Toronto, Ontario", place.DisplayName)
}

func TestSearchFallsBackWhenBoundedEmpty(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Query().Get("bounded"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("bounded") == "1" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, France"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{West: -79.8, North: 43.9, East: -78.7, South: 43.4})
	place, err := client.Search(context.Background(), "paris")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.Equal(t, []string{"1", ""}, calls)
	assert.Equal(t, "Paris, France", place.DisplayName)
}

func TestSearchNoViewboxSkipsBoundedPass(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Empty(t, r.URL.Query().Get("bounded"))
		w.Write([]byte(`[{"lat":"1","lon":"2","display_name":"x"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{})
	_, err := client.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{})
	place, err := client.Search(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{})
	_, err := client.Search(context.Background(), "toronto")
	assert.Error(t, err)
}

func TestSearchSendsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"1","lon":"2","display_name":"x"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, Viewbox{})
	_, err := client.Search(context.Background(), "x")
	require.NoError(t, err)
}
