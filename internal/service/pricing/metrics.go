package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "pricing_rejections_total",
		Help: "Resolve calls that found no eligible pricing rule.",
	},
)
