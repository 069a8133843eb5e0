package signaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	reg := NewRegistry()

	id := reg.CreateRoom()
	assert.Len(t, id, tokenLen)
	assert.True(t, reg.HasRoom(id))
	assert.Equal(t, 1, reg.ActiveRooms())

	users, err := reg.RoomStatus(id)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestJoinRoom(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()

	userID, count, err := reg.JoinRoom(roomID)
	require.NoError(t, err)
	assert.Len(t, userID, tokenLen)
	assert.Equal(t, 1, count)

	_, count, err = reg.JoinRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJoinRoomNotFound(t *testing.T) {
	reg := NewRegistry()

	_, _, err := reg.JoinRoom("nope1234")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinRoomManyParticipants(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()

	_, _, err := reg.JoinRoom(roomID)
	require.NoError(t, err)
	_, _, err = reg.JoinRoom(roomID)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		_, count, err := reg.JoinRoom(roomID)
		require.NoError(t, err)
		assert.Equal(t, i+3, count)
	}

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.Len(t, users, 52)

	seen := map[string]bool{}
	for _, u := range users {
		assert.False(t, seen[u], "duplicate user id %s", u)
		seen[u] = true
	}
}

func TestJoinRoomFull(t *testing.T) {
	reg := NewRegistry(WithMaxRoomSize(2))
	roomID := reg.CreateRoom()

	_, _, err := reg.JoinRoom(roomID)
	require.NoError(t, err)
	_, _, err = reg.JoinRoom(roomID)
	require.NoError(t, err)

	_, _, err = reg.JoinRoom(roomID)
	assert.ErrorIs(t, err, ErrRoomFull)

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestLeaveRoom(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()
	user1, _, _ := reg.JoinRoom(roomID)
	user2, _, _ := reg.JoinRoom(roomID)

	require.NoError(t, reg.LeaveRoom(roomID, user1))

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.Equal(t, []string{user2}, users)
}

func TestLeaveRoomValidation(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()

	tests := []struct {
		name   string
		roomID string
		userID string
		want   error
	}{
		{"missing room id", "", "someone1", ErrMissingParameter},
		{"missing user id", roomID, "", ErrMissingParameter},
		{"unknown room", "nope1234", "someone1", ErrRoomNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, reg.LeaveRoom(tt.roomID, tt.userID), tt.want)
		})
	}
}

func TestLeaveRoomUnknownUserIsNoop(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()
	userID, _, _ := reg.JoinRoom(roomID)

	require.NoError(t, reg.LeaveRoom(roomID, "stranger"))

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.Equal(t, []string{userID}, users)
}

func TestLastLeaveDeletesRoom(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()
	user1, _, _ := reg.JoinRoom(roomID)
	user2, _, _ := reg.JoinRoom(roomID)

	require.NoError(t, reg.LeaveRoom(roomID, user1))
	require.NoError(t, reg.LeaveRoom(roomID, user2))

	assert.False(t, reg.HasRoom(roomID))
	assert.Equal(t, 0, reg.ActiveRooms())

	_, err := reg.RoomStatus(roomID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	_, _, err = reg.JoinRoom(roomID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	err = reg.SendSignal(roomID, "a", "b", []byte(`{}`))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStatusPreservesJoinOrder(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()

	var joined []string
	for i := 0; i < 5; i++ {
		u, _, err := reg.JoinRoom(roomID)
		require.NoError(t, err)
		joined = append(joined, u)
	}

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.Equal(t, joined, users)
}

func TestRoomStatusSnapshotIsolated(t *testing.T) {
	reg := NewRegistry()
	roomID := reg.CreateRoom()
	reg.JoinRoom(roomID)

	users, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	users[0] = "mutated"

	again, err := reg.RoomStatus(roomID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0])
}
