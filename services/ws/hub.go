package ws

import (
	game_constants "Blackjack/constants/game"
	"Blackjack/services/game"
	"encoding/json"
	"log"
	"sync"
)

// Message is the envelope written to websocket clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub tracks the websocket connections watching each room.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Conn]struct{})}
}

func (h *Hub) Subscribe(code string, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.subs[code]
	if !ok {
		conns = make(map[*Conn]struct{})
		h.subs[code] = conns
	}
	conns[c] = struct{}{}
}

func (h *Hub) Unsubscribe(code string, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.subs[code]
	if !ok {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.subs, code)
	}
}

func (h *Hub) Subscribers(code string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[code])
}

// Broadcast encodes the view once and queues it on every subscriber.
// A subscriber whose queue is full misses the snapshot.
func (h *Hub) Broadcast(code string, view game.RoomView) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conns := h.subs[code]
	if len(conns) == 0 {
		return
	}
	data, err := json.Marshal(Message{Type: game_constants.EventGameState, Payload: view})
	if err != nil {
		log.Printf("[WS-ERROR] Encoding view of room %s: %v", code, err)
		return
	}
	for c := range conns {
		c.queue(data)
	}
}
