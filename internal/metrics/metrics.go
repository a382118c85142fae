package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gacha_webhook_events_total",
			Help: "Webhook deliveries by pipeline outcome",
		},
		[]string{"outcome"},
	)
	Draws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gacha_draws_total",
			Help: "Completed prize draws by grade",
		},
		[]string{"grade"},
	)
	GatewayErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gacha_gateway_errors_total",
			Help: "Failed Webex API calls by operation",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(WebhookEvents, Draws, GatewayErrors)
}
