package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejected_total",
		Help: "Requests rejected by the token bucket limiter.",
	},
	[]string{"method", "route"},
)
