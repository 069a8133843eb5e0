package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"webrtc-signaling/internal/metrics"
)

type sendSignalRequest struct {
	RoomID   string          `json:"roomId"`
	UserID   string          `json:"userId"`
	TargetID string          `json:"targetId"`
	Signal   json.RawMessage `json:"signal"`
}

type getSignalsRequest struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

var jsonNull = []byte("null")

// SendSignal POST /api/signal
func (a *API) SendSignal(c *fiber.Ctx) error {
	var req sendSignalRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.RoomID == "" || req.UserID == "" || len(req.Signal) == 0 || bytes.Equal(req.Signal, jsonNull) {
		return failJSON(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if err := a.Registry.SendSignal(req.RoomID, req.UserID, req.TargetID, req.Signal); err != nil {
		a.Log.Warn("signal.send.failed", "room", req.RoomID, "err", err)
		return coreError(c, err)
	}
	metrics.SignalsSent.Inc()
	a.Log.Debug("signal.sent", "room", req.RoomID, "from", req.UserID, "to", req.TargetID)
	if req.TargetID != "" {
		a.Hub.Nudge(req.RoomID, req.TargetID)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetSignals POST /api/get-signals
func (a *API) GetSignals(c *fiber.Ctx) error {
	var req getSignalsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.RoomID == "" || req.UserID == "" {
		return failJSON(c, fiber.StatusBadRequest, "Missing required fields")
	}
	deliveries, err := a.Registry.PollSignals(req.RoomID, req.UserID)
	if err != nil {
		return coreError(c, err)
	}
	metrics.Polls.Inc()
	metrics.SignalsDelivered.Add(float64(len(deliveries)))
	if len(deliveries) > 0 {
		a.Log.Debug("signal.delivered", "room", req.RoomID, "user", req.UserID, "count", len(deliveries))
	}
	return c.JSON(fiber.Map{"success": true, "signals": deliveries})
}
