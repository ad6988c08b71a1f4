package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var popsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "courier_queue_pops_total",
		Help: "Queue pop attempts by outcome.",
	},
	[]string{"result"},
)
