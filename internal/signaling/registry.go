// Package signaling holds the in-memory room registry and the per-room
// signal mailbox. It is the only stateful part of the service; the HTTP
// layer is a thin shell around these operations.
package signaling

import (
	"sync"

	"github.com/google/uuid"
)

// tokenLen is the length of room and user tokens handed out to clients.
// Tokens are the first 8 characters of a UUID; that is the wire contract
// clients already depend on.
const tokenLen = 8

// Room groups joined participants and their pending signals. Members keep
// join order; the mailbox keeps arrival order.
type Room struct {
	ID      string
	Users   []string
	Signals []*Signal
}

// Registry owns the set of active rooms. A room exists while it has at
// least one member, or has been created and nobody has left yet. All
// operations are safe for concurrent use; each runs atomically with
// respect to the room map and the mailbox it touches.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	maxRoomSize int // 0 = unlimited
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxRoomSize caps how many members a single room accepts. Zero or
// negative means unlimited.
func WithMaxRoomSize(n int) Option {
	return func(r *Registry) {
		r.maxRoomSize = n
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{rooms: map[string]*Room{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newToken() string {
	return uuid.NewString()[:tokenLen]
}

// CreateRoom registers a new empty room and returns its id. It never fails.
func (r *Registry) CreateRoom() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newToken()
	// Tokens are collision-resistant but not guaranteed unique at 8 chars;
	// never clobber a live room.
	for r.rooms[id] != nil {
		id = newToken()
	}
	r.rooms[id] = &Room{ID: id}
	return id
}

// JoinRoom adds a fresh participant to the room and returns the generated
// user id plus the member count after the join.
func (r *Registry) JoinRoom(roomID string) (string, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return "", 0, ErrRoomNotFound
	}
	if r.maxRoomSize > 0 && len(room.Users) >= r.maxRoomSize {
		return "", 0, ErrRoomFull
	}
	userID := newToken()
	room.Users = append(room.Users, userID)
	return userID, len(room.Users), nil
}

// LeaveRoom removes the user from the room. Removing the last member
// deletes the room together with any undelivered signals. Leaving with a
// user id that is not in the room is a no-op success.
func (r *Registry) LeaveRoom(roomID, userID string) error {
	if roomID == "" || userID == "" {
		return ErrMissingParameter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	for i, u := range room.Users {
		if u == userID {
			room.Users = append(room.Users[:i], room.Users[i+1:]...)
			break
		}
	}
	if len(room.Users) == 0 {
		delete(r.rooms, roomID)
	}
	return nil
}

// RoomStatus returns a snapshot of the room's member list in join order.
func (r *Registry) RoomStatus(roomID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	users := make([]string, len(room.Users))
	copy(users, room.Users)
	return users, nil
}

// HasRoom reports whether the room id is currently active.
func (r *Registry) HasRoom(roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[roomID]
	return ok
}

// ActiveRooms returns the number of rooms currently in the registry.
func (r *Registry) ActiveRooms() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
