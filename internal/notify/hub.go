// Package notify is an optional WebSocket side channel: clients connected
// here get a small nudge when a signal addressed to them arrives, so they
// can poll immediately instead of on a timer. Delivery itself stays on the
// polling API; a client that never connects here loses nothing.
package notify

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Nudge is the only message the hub ever pushes.
type Nudge struct {
	Kind string `json:"kind"` // "signal"
}

type Client struct {
	RoomID string
	UserID string
	Conn   ConnLike
	Send   chan []byte
}

// ConnLike lets tests stand in for a real websocket connection.
type ConnLike interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(int, []byte) error
	Close() error
}

type Hub struct {
	log *slog.Logger

	mu    sync.RWMutex
	rooms map[string]map[string]*Client // roomID -> userID -> client
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:   log,
		rooms: map[string]map[string]*Client{},
	}
}

// Register attaches a client for (room, user). A reconnect replaces the
// previous connection, which gets closed.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.rooms[c.RoomID] == nil {
		h.rooms[c.RoomID] = map[string]*Client{}
	}
	prev := h.rooms[c.RoomID][c.UserID]
	h.rooms[c.RoomID][c.UserID] = c
	if prev != nil {
		// Closed under the lock so a concurrent Nudge can never write to
		// a closed channel.
		close(prev.Send)
		_ = prev.Conn.Close()
	}
	h.mu.Unlock()

	h.log.Debug("notify.register", "room", c.RoomID, "user", c.UserID)
}

// Unregister detaches the client if it is still the one on record.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	users := h.rooms[c.RoomID]
	detached := users != nil && users[c.UserID] == c
	if detached {
		delete(users, c.UserID)
		if len(users) == 0 {
			delete(h.rooms, c.RoomID)
		}
		close(c.Send)
	}
	h.mu.Unlock()

	if detached {
		h.log.Debug("notify.unregister", "room", c.RoomID, "user", c.UserID)
	}
}

// Nudge tells the (room, user) client, if connected, that a signal is
// waiting. Slow clients are skipped rather than blocked on; they will see
// the signal on their next poll anyway.
func (h *Hub) Nudge(roomID, userID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c := h.rooms[roomID][userID]
	if c == nil {
		return
	}

	data, _ := json.Marshal(&Nudge{Kind: "signal"})
	select {
	case c.Send <- data:
	default:
	}
}

// Connected reports how many clients are attached, across all rooms.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, users := range h.rooms {
		n += len(users)
	}
	return n
}

func (h *Hub) WritePump(c *Client) {
	for data := range c.Send {
		_ = c.Conn.WriteMessage(websocket.TextMessage, data)
	}
}

// ReadPump drains (and ignores) inbound frames until the connection drops,
// then unregisters. The channel is push-only from the server side.
func (h *Hub) ReadPump(c *Client) {
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			h.Unregister(c)
			return
		}
	}
}
