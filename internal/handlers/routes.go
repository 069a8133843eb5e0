package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"webrtc-signaling/internal/metrics"
)

// Register mounts every route on the fiber app.
func (a *API) Register(srv *fiber.App) {
	srv.Get("/health", a.Health)
	srv.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	srv.Post("/api/create-room", a.CreateRoom)
	srv.Post("/api/join-room/:roomID", a.JoinRoom)
	srv.Post("/api/leave-room", a.LeaveRoom)
	srv.Get("/api/room-status/:roomID", a.RoomStatus)

	srv.Post("/api/signal", a.SendSignal)
	srv.Post("/api/get-signals", a.GetSignals)
	srv.Get("/api/ice-servers", a.ICEServers)
	srv.Get("/api/notify/:roomID/:userID", a.NotifyUpgrade, websocket.New(a.Notify))

	srv.Get("/", a.Index)
	srv.Get("/room/:roomID", a.RoomPage)
}
