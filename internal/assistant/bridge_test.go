package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/session"
	"github.com/Torido-Mir/CxC2026/internal/spatial"
)

func ring(lat, lng float64) spatial.Ring {
	const d = 0.003
	return spatial.Ring{
		{Lat: lat - d, Lng: lng - d},
		{Lat: lat - d, Lng: lng + d},
		{Lat: lat + d, Lng: lng + d},
		{Lat: lat + d, Lng: lng - d},
		{Lat: lat - d, Lng: lng - d},
	}
}

func newTestSession() *session.Session {
	cells := []models.GridCell{
		{Ring: ring(47.60, -52.80), CoveragePct: 8, BuildingCount: 20, Settlement: "Torbay"},
		{Ring: ring(47.61, -52.80), CoveragePct: 25, BuildingCount: 60, Settlement: "Torbay"},
	}
	buildings := []models.Building{
		{ObjectID: 1, Settlement: "Torbay", SizeEligible: true, Lat: 47.60, Lng: -52.80},
	}
	stats := []models.NeighborhoodStat{
		{Settlement: "Torbay", CentroidLat: 47.605, CentroidLng: -52.80},
	}
	return session.New(dataset.New(cells, buildings, stats), 13)
}

func chatBackend(t *testing.T, handler func(req models.ChatRequest) (int, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSendAppliesActionSequence(t *testing.T) {
	sess := newTestSession()
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		return 200, `{"thread_id":"th_1","message":"Done.","actions":[
			{"type":"apply_filters","min_coverage":5},
			{"type":"show_building_points","visible":true}
		]}`
	})
	defer srv.Close()

	genBefore := sess.Layers().Generation
	bridge := NewBridge(NewClient(srv.URL, 0), sess)

	res, err := bridge.Send(context.Background(), "show dense cells and buildings")
	require.NoError(t, err)
	assert.Equal(t, "Done.", res.Message)
	assert.Equal(t, 2, res.ActionsApplied)

	snap := sess.State()
	assert.Equal(t, 5.0, snap.Filters.MinCoverage)
	assert.True(t, snap.Filters.ShowBuildings)
	assert.Equal(t, "th_1", sess.ThreadID(), "first response seeds the thread")
	assert.Equal(t, genBefore+2, sess.Layers().Generation, "each action renders before the next")
	assert.False(t, snap.ChatBusy)
}

func TestSendCarriesThreadAndMapState(t *testing.T) {
	sess := newTestSession()
	sess.SetThreadID("th_9")
	eligible := true
	sess.ApplyFilters(models.FilterPatch{SizeEligibleOnly: &eligible})

	var seen models.ChatRequest
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		seen = req
		return 200, `{"thread_id":"th_9","message":"ok","actions":[]}`
	})
	defer srv.Close()

	_, err := NewBridge(NewClient(srv.URL, 0), sess).Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "th_9", seen.ThreadID)
	assert.Equal(t, "hello", seen.Message)
	assert.True(t, seen.MapState.SizeEligibleOnly)
	assert.Equal(t, 0.1, seen.MapState.MinCoverage)
}

func TestUnknownActionsIgnored(t *testing.T) {
	sess := newTestSession()
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		return 200, `{"thread_id":"th_2","message":"ok","actions":[
			{"type":"launch_fireworks","count":3},
			{"type":"highlight_settlement","settlement":"Torbay"}
		]}`
	})
	defer srv.Close()

	res, err := NewBridge(NewClient(srv.URL, 0), sess).Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, 1, res.ActionsApplied)
	assert.Equal(t, "Torbay", sess.State().Filters.Settlement)
	assert.Equal(t, models.DetailNeighborhood, sess.Detail().Kind, "highlight runs the manual cascade")
}

func TestZoomToSettlementAction(t *testing.T) {
	sess := newTestSession()
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		return 200, `{"thread_id":"th_3","message":"ok","actions":[
			{"type":"zoom_to_settlement","settlement":"Torbay"}
		]}`
	})
	defer srv.Close()

	_, err := NewBridge(NewClient(srv.URL, 0), sess).Send(context.Background(), "where is torbay")
	require.NoError(t, err)
	require.NotNil(t, sess.State().Camera)
	assert.InDelta(t, 47.605, sess.State().Camera.Lat, 1e-9)
}

func TestServerErrorPreservesThread(t *testing.T) {
	sess := newTestSession()
	sess.SetThreadID("th_keep")
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		return 502, `{"detail":"LLM API error: upstream timeout"}`
	})
	defer srv.Close()

	_, err := NewBridge(NewClient(srv.URL, 0), sess).Send(context.Background(), "hi")
	require.Error(t, err)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 502, serverErr.StatusCode)
	assert.Contains(t, serverErr.Detail, "upstream timeout")
	assert.Equal(t, "th_keep", sess.ThreadID(), "transport and server errors keep the thread")
	assert.False(t, sess.State().ChatBusy)
}

func TestCorruptedThreadResets(t *testing.T) {
	sess := newTestSession()
	sess.SetThreadID("th_bad")
	srv := chatBackend(t, func(req models.ChatRequest) (int, string) {
		return 502, `{"detail":"Invalid parameter: messages with role 'tool' must follow tool_calls"}`
	})
	defer srv.Close()

	res, err := NewBridge(NewClient(srv.URL, 0), sess).Send(context.Background(), "hi")
	require.NoError(t, err, "corruption recovery is not an error path")
	assert.True(t, res.ThreadReset)
	assert.Equal(t, RetryMessage, res.Message)
	assert.Empty(t, sess.ThreadID())
}

func TestTransportFailure(t *testing.T) {
	sess := newTestSession()
	sess.SetThreadID("th_keep")

	bridge := NewBridge(NewClient("http://127.0.0.1:1", 0), sess)
	_, err := bridge.Send(context.Background(), "hi")
	require.Error(t, err)
	assert.Equal(t, "th_keep", sess.ThreadID())
}

func TestIsThreadCorrupted(t *testing.T) {
	assert.False(t, IsThreadCorrupted(nil))
	assert.False(t, IsThreadCorrupted(&ServerError{StatusCode: 500, Detail: "boom"}))
	assert.True(t, IsThreadCorrupted(&ServerError{StatusCode: 502, Detail: "dangling tool_call_id"}))
	assert.True(t, IsThreadCorrupted(&ServerError{StatusCode: 400, Detail: "Invalid parameter"}))
}
