package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routing_gateway_request_duration_seconds",
			Help:    "Duration of outbound routing engine requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "code"},
	)

	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routing_gateway_retries_total",
			Help: "Number of routing calls that needed at least one retry",
		},
		[]string{"service", "method", "code"},
	)
)
