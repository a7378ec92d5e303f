// MentorHive | 2026
// hub.go

package realtime

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
)

var (
	ErrNotInitialized     = errors.New("realtime hub not initialized")
	ErrAlreadyInitialized = errors.New("realtime hub already initialized")
)

var (
	hubMu      sync.Mutex
	defaultHub *Hub
)

// Init wires the process-wide hub exactly once. A second call is a
// programming error and fails.
func Init(logger *slog.Logger) (*Hub, error) {
	hubMu.Lock()
	defer hubMu.Unlock()

	if defaultHub != nil {
		return nil, ErrAlreadyInitialized
	}

	defaultHub = newHub(logger)
	return defaultHub, nil
}

// Get returns the hub initialized by Init.
func Get() (*Hub, error) {
	hubMu.Lock()
	defer hubMu.Unlock()

	if defaultHub == nil {
		return nil, ErrNotInitialized
	}

	return defaultHub, nil
}

// reset is test-only.
func reset() {
	hubMu.Lock()
	defer hubMu.Unlock()
	defaultHub = nil
}

// Event is the envelope pushed to every connection in a room.
type Event struct {
	Room    string `json:"room"`
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// Hub tracks room membership for live connections. It holds the only
// shared mutable state in the process and is safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *slog.Logger
}

func newHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(c, room)
}

func (h *Hub) leaveLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(c.rooms, room)
}

// remove drops the connection from every room it joined.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range c.rooms {
		h.leaveLocked(c, room)
	}
}

// Broadcast fans an event out to every connection in the room. Delivery
// is best-effort: slow consumers are skipped, never waited on.
func (h *Hub) Broadcast(room, event string, payload any) {
	msg, err := json.Marshal(Event{Room: room, Event: event, Payload: payload})
	if err != nil {
		h.logger.Warn("realtime: marshal event failed",
			"room", room, "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- msg:
		default:
			h.logger.Debug("realtime: dropping event for slow consumer",
				"room", room, "event", event)
		}
	}
}

// RoomSize reports current membership, used by the system stats surface.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
