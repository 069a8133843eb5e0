package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/pion/webrtc/v4"
)

type Config struct {
	Env       string
	HTTPAddr  string
	CORSAllow []string

	// MaxRoomSize caps participants per room; 0 means unlimited.
	MaxRoomSize int

	// ICEServers is handed to room pages via /api/ice-servers so they can
	// build RTCPeerConnection configs. This service never touches media.
	ICEServers []webrtc.ICEServer
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
	}
	cfg.MaxRoomSize = getEnvInt("MAX_ROOM_SIZE", 0)
	cfg.CORSAllow = splitCSV(getEnv("CORS_ALLOW", "*"))

	ice, err := ParseICEServers(
		getEnv("STUN_URLS", "stun:stun.l.google.com:19302"),
		getEnv("TURN_URLS", ""),
		getEnv("TURN_USERNAME", ""),
		getEnv("TURN_CREDENTIAL", ""),
	)
	if err != nil {
		return Config{}, fmt.Errorf("ice servers: %w", err)
	}
	cfg.ICEServers = ice
	return cfg, nil
}

// getEnv returns the env var or a default
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses an int env var with a fallback
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var i int
		_, _ = fmt.Sscanf(v, "%d", &i)
		if i > 0 {
			return i
		}
	}
	return def
}

// splitCSV trims and filters a comma-separated list
func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
