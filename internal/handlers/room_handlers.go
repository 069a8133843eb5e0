package handlers

import (
	"github.com/gofiber/fiber/v2"

	"webrtc-signaling/internal/metrics"
)

// CreateRoom POST /api/create-room
func (a *API) CreateRoom(c *fiber.Ctx) error {
	roomID := a.Registry.CreateRoom()
	metrics.RoomsCreated.Inc()
	a.Log.Debug("room.created", "room", roomID)
	return c.JSON(fiber.Map{"success": true, "roomId": roomID})
}

// JoinRoom POST /api/join-room/:roomID
func (a *API) JoinRoom(c *fiber.Ctx) error {
	roomID := c.Params("roomID")
	userID, participants, err := a.Registry.JoinRoom(roomID)
	if err != nil {
		a.Log.Warn("room.join.failed", "room", roomID, "err", err)
		return coreError(c, err)
	}
	metrics.RoomJoins.Inc()
	a.Log.Debug("room.joined", "room", roomID, "user", userID, "participants", participants)
	return c.JSON(fiber.Map{
		"success":      true,
		"roomId":       roomID,
		"userId":       userID,
		"participants": participants,
	})
}

type leaveRoomRequest struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

// LeaveRoom POST /api/leave-room
func (a *API) LeaveRoom(c *fiber.Ctx) error {
	var req leaveRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.RoomID == "" || req.UserID == "" {
		return failJSON(c, fiber.StatusBadRequest, "Missing roomId or userId")
	}
	if err := a.Registry.LeaveRoom(req.RoomID, req.UserID); err != nil {
		a.Log.Warn("room.leave.failed", "room", req.RoomID, "err", err)
		return coreError(c, err)
	}
	a.Log.Debug("room.left", "room", req.RoomID, "user", req.UserID)
	return c.JSON(fiber.Map{"success": true})
}

// RoomStatus GET /api/room-status/:roomID
func (a *API) RoomStatus(c *fiber.Ctx) error {
	roomID := c.Params("roomID")
	users, err := a.Registry.RoomStatus(roomID)
	if err != nil {
		return coreError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"roomId":       roomID,
		"participants": len(users),
		"users":        users,
	})
}
