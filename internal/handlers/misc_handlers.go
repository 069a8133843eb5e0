package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"webrtc-signaling/internal/notify"
)

// Health GET /health
func (a *API) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "healthy",
		"active_rooms": a.Registry.ActiveRooms(),
	})
}

// ICEServers GET /api/ice-servers
func (a *API) ICEServers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "iceServers": a.ICE})
}

// Index GET /
func (a *API) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// RoomPage GET /room/:roomID
func (a *API) RoomPage(c *fiber.Ctx) error {
	roomID := c.Params("roomID")
	if !a.Registry.HasRoom(roomID) {
		return c.Status(fiber.StatusNotFound).SendString("Room not found")
	}
	return c.Render("room", fiber.Map{"RoomID": roomID})
}

// NotifyUpgrade gates GET /api/notify/:roomID/:userID before the upgrade.
func (a *API) NotifyUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if !a.Registry.HasRoom(c.Params("roomID")) {
		return fiber.ErrNotFound
	}
	return c.Next()
}

// Notify is the websocket side of the nudge channel.
func (a *API) Notify(c *websocket.Conn) {
	client := &notify.Client{
		RoomID: c.Params("roomID"),
		UserID: c.Params("userID"),
		Conn:   c,
		Send:   make(chan []byte, 16),
	}
	a.Hub.Register(client)
	go a.Hub.WritePump(client)
	a.Hub.ReadPump(client)
}
