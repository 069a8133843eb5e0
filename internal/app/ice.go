package app

import (
	"errors"
	"strings"

	"github.com/pion/webrtc/v4"
)

// ParseICEServers builds the client-facing ICE server list from the
// convenience env values. URL lists are comma-separated. TURN servers need
// credentials to be usable, so a TURN list without both username and
// credential is a config error rather than a silent broken entry.
func ParseICEServers(stunURLs, turnURLs, turnUsername, turnCredential string) ([]webrtc.ICEServer, error) {
	stunList := splitCSV(stunURLs)
	turnList := splitCSV(turnURLs)

	var servers []webrtc.ICEServer
	if len(stunList) > 0 {
		for _, url := range stunList {
			if !strings.HasPrefix(url, "stun:") && !strings.HasPrefix(url, "stuns:") {
				return nil, errors.New("stun url must start with stun: or stuns:")
			}
		}
		servers = append(servers, webrtc.ICEServer{URLs: stunList})
	}
	if len(turnList) > 0 {
		for _, url := range turnList {
			if !strings.HasPrefix(url, "turn:") && !strings.HasPrefix(url, "turns:") {
				return nil, errors.New("turn url must start with turn: or turns:")
			}
		}
		if strings.TrimSpace(turnUsername) == "" || strings.TrimSpace(turnCredential) == "" {
			return nil, errors.New("turn urls require TURN_USERNAME and TURN_CREDENTIAL")
		}
		servers = append(servers, webrtc.ICEServer{
			URLs:       turnList,
			Username:   turnUsername,
			Credential: turnCredential,
		})
	}
	return servers, nil
}

// ICEServerJSON is the wire shape of one ICE server entry, matching what
// RTCPeerConnection accepts directly.
type ICEServerJSON struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

// ICEServersJSON converts pion's config type to the client wire shape.
func ICEServersJSON(servers []webrtc.ICEServer) []ICEServerJSON {
	out := make([]ICEServerJSON, 0, len(servers))
	for _, s := range servers {
		entry := ICEServerJSON{URLs: s.URLs, Username: s.Username}
		if cred, ok := s.Credential.(string); ok {
			entry.Credential = cred
		}
		out = append(out, entry)
	}
	return out
}
