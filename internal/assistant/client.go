// Package assistant bridges the chat backend to the map session: it sends
// user messages with the current filter snapshot and applies the returned
// structured actions deterministically.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Torido-Mir/CxC2026/internal/models"
)

// DefaultTimeout bounds one round trip to the chat backend
const DefaultTimeout = 60 * time.Second

// Client talks to the chat backend's /chat endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a chat backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ServerError is a non-success response from the chat backend, carrying
// the detail field when the backend provided one
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("chat backend error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("chat backend error (status %d)", e.StatusCode)
}

// Send posts one chat request and decodes the response
func (c *Client) Send(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach chat backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &ServerError{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &detail) == nil {
			serverErr.Detail = detail.Detail
		}
		return nil, serverErr
	}

	var chatResp models.ChatResponse
	if err := json.Unmarshal(data, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}
	return &chatResp, nil
}

// IsThreadCorrupted reports whether an error indicates a corrupted
// server-side conversation (dangling tool-call state). This is a recovery
// heuristic keyed on the backend's error text, not a generic error path.
func IsThreadCorrupted(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "tool_call") ||
		strings.Contains(msg, "tool_calls") ||
		strings.Contains(msg, "Invalid parameter")
}
