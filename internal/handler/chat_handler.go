package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Torido-Mir/CxC2026/internal/assistant"
	"github.com/Torido-Mir/CxC2026/internal/session"
	"github.com/Torido-Mir/CxC2026/pkg/response"
)

// ChatHandler handles HTTP requests for the map assistant
type ChatHandler struct {
	bridge *assistant.Bridge
}

// NewChatHandler creates a new chat handler
func NewChatHandler(bridge *assistant.Bridge) *ChatHandler {
	return &ChatHandler{bridge: bridge}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send forwards a message to the assistant and applies its map actions
// POST /api/v1/chat
func (h *ChatHandler) Send(c *gin.Context) {
	if h.bridge == nil {
		response.Error(c, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Message is required")
		return
	}

	result, err := h.bridge.Send(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, session.ErrChatBusy) {
			response.Error(c, http.StatusConflict, "A message is already in flight")
			return
		}
		var serverErr *assistant.ServerError
		if errors.As(err, &serverErr) {
			response.Error(c, http.StatusBadGateway, serverErr.Detail)
			return
		}
		response.Error(c, http.StatusBadGateway, "Assistant is unreachable")
		return
	}

	response.Success(c, result)
}
