package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the wire envelope for one realtime message.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type WSClient struct {
	Conn *websocket.Conn

	writeMu sync.Mutex // gorilla allows one concurrent writer per conn
}

func (c *WSClient) Send(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans events out to every connected client. There is no
// per-client filtering and no replay: clients that connect later miss past
// events and catch up through /get_alerts.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// ClientCount reports how many clients are currently connected.
func (h *RealtimeHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends one event to all connected clients, fire-and-forget.
// Write failures drop the client and are never surfaced to the caller.
func (h *RealtimeHub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		log.Printf("broadcast encode error: %v", err)
		return
	}

	h.mu.RLock()
	clients := make([]*WSClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.Send(websocket.TextMessage, msg); err != nil {
			log.Printf("broadcast write error, dropping client: %v", err)
			h.Unregister(c)
		}
	}
}
