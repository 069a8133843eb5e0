package signaling

import (
	"bytes"
	"encoding/json"
)

// mailboxRetain is how many trailing mailbox entries survive cleanup even
// after being processed, so a client that reconnects quickly can still see
// recent traffic. Unprocessed signals are never dropped.
const mailboxRetain = 20

// Signal is one negotiation message parked in a room's mailbox. The payload
// is opaque to the service and passed through byte for byte.
type Signal struct {
	From      string
	To        string
	Payload   json.RawMessage
	Processed bool
}

// Delivery is what PollSignals hands back for each matched signal.
type Delivery struct {
	From    string          `json:"from"`
	Payload json.RawMessage `json:"signal"`
}

var jsonNull = []byte("null")

// SendSignal appends a signal addressed to target onto the room's mailbox.
// An empty target is accepted and stored as-is: poll matching is exact, so
// such a signal is never delivered to anyone. That mirrors the behavior
// clients were built against; do not "fix" it here without changing pollers.
func (r *Registry) SendSignal(roomID, from, target string, payload json.RawMessage) error {
	if roomID == "" || from == "" || len(payload) == 0 || bytes.Equal(payload, jsonNull) {
		return ErrMissingParameter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	room.Signals = append(room.Signals, &Signal{
		From:    from,
		To:      target,
		Payload: payload,
	})
	return nil
}

// PollSignals extracts every pending signal addressed to userID, in arrival
// order, marking each processed so repeated polls never replay a delivery.
// It then trims the mailbox: processed entries are dropped unless they sit
// within the last mailboxRetain positions. The scan, mark and trim run as
// one atomic step relative to concurrent sends and polls on the room.
func (r *Registry) PollSignals(roomID, userID string) ([]Delivery, error) {
	if roomID == "" || userID == "" {
		return nil, ErrMissingParameter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	deliveries := []Delivery{}
	for _, s := range room.Signals {
		if s.Processed || s.To != userID {
			continue
		}
		s.Processed = true
		deliveries = append(deliveries, Delivery{From: s.From, Payload: s.Payload})
	}

	room.Signals = trimMailbox(room.Signals)
	return deliveries, nil
}

// trimMailbox keeps entry i when it is still unprocessed or within the last
// mailboxRetain positions of the pre-trim queue. Order is preserved.
func trimMailbox(signals []*Signal) []*Signal {
	n := len(signals)
	if n <= mailboxRetain {
		return signals
	}
	kept := signals[:0]
	for i, s := range signals {
		if !s.Processed || i >= n-mailboxRetain {
			kept = append(kept, s)
		}
	}
	return kept
}
