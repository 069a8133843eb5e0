package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"webrtc-signaling/internal/app"
	"webrtc-signaling/internal/handlers"
	"webrtc-signaling/internal/metrics"
	"webrtc-signaling/internal/notify"
	"webrtc-signaling/internal/signaling"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load local .env (dev only)
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := app.NewLogger(cfg.Env)

	reg := signaling.NewRegistry(signaling.WithMaxRoomSize(cfg.MaxRoomSize))
	hub := notify.NewHub(logger)
	metrics.RegisterActiveRooms(func() float64 { return float64(reg.ActiveRooms()) })

	engine := html.New("./public/views", ".html")
	srv := fiber.New(fiber.Config{Views: engine})
	srv.Use(recover.New())
	srv.Use(requestid.New())
	srv.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.CORSAllow, ",")}))
	srv.Static("/static", "./public/static")

	api := handlers.New(reg, hub, app.ICEServersJSON(cfg.ICEServers), logger)
	api.Register(srv)

	go func() {
		logger.Info("server.listening", "addr", cfg.HTTPAddr)
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("server.crash", "err", err)
			os.Exit(1)
		}
	}()

	// Blocks until SIGINT/SIGTERM, then drains in-flight requests.
	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				logger.Info("server.shutdown.start")
				return srv.ShutdownWithContext(ctx)
			},
		})
	exitCode := <-wait
	logger.Info("server.shutdown.complete")
	os.Exit(exitCode)
}
