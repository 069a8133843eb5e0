package signaling

import "errors"

var (
	// ErrRoomNotFound is returned when the room id is not in the registry.
	ErrRoomNotFound = errors.New("room does not exist")

	// ErrMissingParameter is returned when a required argument is empty.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrRoomFull is returned by JoinRoom when the configured room size
	// limit is reached. Never returned with the default (unlimited) config.
	ErrRoomFull = errors.New("room is full")
)
