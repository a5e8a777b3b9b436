package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/pkg/dto"
)

const (
	EventSessionStateChanged = "session_state_changed"
	EventCollectionChanged   = "collection_changed"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Message is an encoded event ready to be written to a stream.
type Message struct {
	Type string
	Data []byte
}

type Client struct {
	ID   string
	Send chan Message
}

// Hub fans presentation signals out to every connected stream. It satisfies
// services.Notifier; broadcasting never blocks the caller.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}
	logger     *slog.Logger
	mu         sync.RWMutex
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
		logger:     logger.With("component", "sse"),
	}
}

// Run dispatches until ctx is done, then closes every client stream.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event.Data)
			if err != nil {
				h.logger.Error("failed to encode event", "type", event.Type, "error", err)
				continue
			}
			msg := Message{Type: event.Type, Data: data}
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					h.logger.Warn("client buffer full, event dropped", "client_id", client.ID, "type", event.Type)
				}
			}
			h.mu.RUnlock()

		case <-ctx.Done():
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds client. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("broadcast queue full, event dropped", "type", event.Type)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) SessionStateChanged(status models.SessionStatus) {
	h.Broadcast(Event{Type: EventSessionStateChanged, Data: status})
}

func (h *Hub) CollectionChanged(snapshot []models.CapturedAnimal) {
	h.Broadcast(Event{
		Type: EventCollectionChanged,
		Data: dto.CollectionChangedEvent{
			Count:   len(snapshot),
			Animals: dto.Summarize(snapshot),
		},
	})
}
