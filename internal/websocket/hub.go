package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event is a single entry on the live feed: a freshly posted live update or
// notification, or a deletion of one.
type Event struct {
	Type string `json:"type"` // "live_update", "notification", "live_update_deleted", "notification_deleted"
	ID   uint   `json:"id"`
	Text string `json:"text,omitempty"`
}

func (e Event) encode() []byte {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return payload
}

// Hub maintains the set of connected dashboard clients and fans events out to
// all of them. Unlike a signaling hub there is no routing: every connected
// client sees every event.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	Register   chan *Client
	Unregister chan *Client
	Events     chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Events:     make(chan Event, 16),
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues an event for broadcast without blocking the caller.
func (h *Hub) Publish(event Event) {
	select {
	case h.Events <- event:
	default:
		slog.Default().Warn("event feed full, dropping event", "type", event.Type, "id", event.ID)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			slog.Default().Debug("feed client connected", "client_id", client.ID, "total", h.ClientCount())

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				client.closeSend()
			}
			h.mu.Unlock()
			slog.Default().Debug("feed client disconnected", "client_id", client.ID, "total", h.ClientCount())

		case event := <-h.Events:
			payload := event.encode()
			if payload == nil {
				continue
			}
			h.mu.RLock()
			for id, client := range h.clients {
				if !client.trySend(payload) {
					// Send buffer full, skip; the client catches up on reload
					slog.Default().Debug("feed client send buffer full", "client_id", id)
				}
			}
			h.mu.RUnlock()
		}
	}
}
