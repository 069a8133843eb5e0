// Package handlers is the HTTP shell over the signaling core: request
// parsing, status-code mapping and the JSON response shapes clients expect.
package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"webrtc-signaling/internal/app"
	"webrtc-signaling/internal/notify"
	"webrtc-signaling/internal/signaling"
)

type API struct {
	Registry *signaling.Registry
	Hub      *notify.Hub
	ICE      []app.ICEServerJSON
	Log      *slog.Logger
}

func New(reg *signaling.Registry, hub *notify.Hub, ice []app.ICEServerJSON, log *slog.Logger) *API {
	if ice == nil {
		ice = []app.ICEServerJSON{}
	}
	return &API{Registry: reg, Hub: hub, ICE: ice, Log: log}
}

func failJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

func invalidBody(c *fiber.Ctx) error {
	return failJSON(c, fiber.StatusBadRequest, "Invalid JSON body")
}

// coreError maps registry errors onto the wire contract.
func coreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, signaling.ErrRoomNotFound):
		return failJSON(c, fiber.StatusNotFound, "Room does not exist")
	case errors.Is(err, signaling.ErrRoomFull):
		return failJSON(c, fiber.StatusConflict, "Room is full")
	case errors.Is(err, signaling.ErrMissingParameter):
		return failJSON(c, fiber.StatusBadRequest, "Missing required fields")
	default:
		return failJSON(c, fiber.StatusInternalServerError, "Internal error")
	}
}
