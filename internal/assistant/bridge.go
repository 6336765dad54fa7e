package assistant

import (
	"context"
	"log"

	"github.com/Torido-Mir/CxC2026/internal/models"
	"github.com/Torido-Mir/CxC2026/internal/session"
)

// RetryMessage is shown when a corrupted conversation was dropped
const RetryMessage = "The conversation got into a bad state, so I started a fresh one. Please send your message again."

// Bridge applies assistant responses to the map session
type Bridge struct {
	client  *Client
	session *session.Session
}

// NewBridge creates the assistant bridge
func NewBridge(client *Client, sess *session.Session) *Bridge {
	return &Bridge{client: client, session: sess}
}

// Result is what the chat UI renders after a send
type Result struct {
	Message        string `json:"message"` // Markdown
	ActionsApplied int    `json:"actions_applied"`
	ThreadReset    bool   `json:"thread_reset"`
}

// Send forwards one user message. While the call is outstanding the
// session rejects further sends. On success the thread id is stored and
// every action is applied in array order, each completing its render
// cascade before the next begins. On failure the thread is preserved,
// except when the error text indicates a corrupted tool-call state, in
// which case the thread resets and the user is told to retry.
func (b *Bridge) Send(ctx context.Context, message string) (*Result, error) {
	threadID, err := b.session.BeginChat()
	if err != nil {
		return nil, err
	}
	defer b.session.EndChat()

	resp, err := b.client.Send(ctx, models.ChatRequest{
		Message:  message,
		ThreadID: threadID,
		MapState: b.session.MapState(),
	})
	if err != nil {
		if IsThreadCorrupted(err) {
			log.Printf("[Assistant] thread %q corrupted, resetting: %v", threadID, err)
			b.session.ResetThread()
			return &Result{Message: RetryMessage, ThreadReset: true}, nil
		}
		return nil, err
	}

	b.session.SetThreadID(resp.ThreadID)

	applied := 0
	for _, action := range resp.Actions {
		if b.apply(action) {
			applied++
		}
	}

	return &Result{Message: resp.Message, ActionsApplied: applied}, nil
}

// apply executes one action variant against the session. Returns false
// when the action could not take effect (e.g. unknown settlement).
func (b *Bridge) apply(action models.ChatAction) bool {
	switch a := action.(type) {
	case models.HighlightSettlement:
		if err := b.session.SelectSettlement(a.Settlement); err != nil {
			log.Printf("[Assistant] highlight_settlement skipped: %v", err)
			return false
		}
		return true

	case models.ZoomToSettlement:
		if b.session.ZoomToSettlement(a.Settlement) {
			return true
		}
		// No centroid known: fall back to highlight behavior.
		if err := b.session.SelectSettlement(a.Settlement); err != nil {
			log.Printf("[Assistant] zoom_to_settlement skipped: %v", err)
			return false
		}
		return true

	case models.ApplyFilters:
		patch := models.FilterPatch{
			SizeEligibleOnly: a.SizeEligibleOnly,
			BuildingType:     a.BuildingType,
			StoreyTier:       a.StoreyTier,
			MinCoverage:      a.MinCoverage,
			MinBuildings:     a.MinBuildings,
		}
		if patch.Empty() {
			return false
		}
		b.session.ApplyFilters(patch)
		return true

	case models.ShowBuildingPoints:
		visible := a.Visible
		b.session.ApplyFilters(models.FilterPatch{ShowBuildings: &visible})
		return true

	default:
		// Closed set; a new variant without a case here is a bug, but the
		// map must not break because of it.
		log.Printf("[Assistant] unhandled action %T ignored", action)
		return false
	}
}
