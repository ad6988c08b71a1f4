package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deadLettersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_dead_letters_total",
		Help: "Messages moved to a dead-letter topic after exhausting processing attempts.",
	},
	[]string{"topic"},
)
