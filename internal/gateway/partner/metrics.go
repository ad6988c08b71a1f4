package partner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "partner_gateway_request_duration_seconds",
			Help:    "Duration of outbound delivery partner requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "code"},
	)

	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "partner_gateway_retries_total",
			Help: "Number of partner calls that needed at least one retry",
		},
		[]string{"service", "method", "code"},
	)
)
