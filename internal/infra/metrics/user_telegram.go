package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		telegramUpdatesTotal,
		weatherCallbackActionsTotal,
	)
}

var (
	telegramUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_total",
			Help: "Incoming updates by kind (message/callback) and dispatch outcome.",
		},
		[]string{"kind", "outcome"},
	)

	weatherCallbackActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_callback_actions_total",
			Help: "Button presses by requested view.",
		},
		[]string{"action"},
	)
)

func IncUpdate(kind, outcome string) {
	telegramUpdatesTotal.WithLabelValues(norm(kind), norm(outcome)).Inc()
}

func IncCallbackAction(action string) {
	weatherCallbackActionsTotal.WithLabelValues(norm(action)).Inc()
}
