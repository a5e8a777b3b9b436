package handlers

import (
	"github.com/dimitrije/critterdex-api/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub SSEHubInterface
}

func NewSSEHandler(hub SSEHubInterface) *SSEHandler {
	return &SSEHandler{hub: hub}
}

func (h *SSEHandler) Connect(c *drift.Context) {
	clientID := uuid.New().String()
	client := &sse.Client{
		ID:   clientID,
		Send: make(chan sse.Message, 64),
	}

	if !h.hub.Register(client) {
		_ = c.JSON(503, map[string]string{"error": "event stream is shutting down"})
		return
	}
	defer h.hub.Unregister(client)

	sseCtx := c.SSE()

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "connected", ""); err != nil {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg.Data), msg.Type, ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
