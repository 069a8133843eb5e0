package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_rooms_created_total",
		Help: "Rooms created since process start.",
	})
	RoomJoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_room_joins_total",
		Help: "Successful room joins.",
	})
	SignalsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_signals_sent_total",
		Help: "Signals accepted into a mailbox.",
	})
	SignalsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_signals_delivered_total",
		Help: "Signals handed to a poller.",
	})
	Polls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_polls_total",
		Help: "Poll requests served, including empty ones.",
	})
)

// RegisterActiveRooms exposes the registry's live room count as a gauge.
func RegisterActiveRooms(f func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "signaling_active_rooms",
		Help: "Rooms currently in the registry.",
	}, f)
}

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
