package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalCalls  = "decorated_calls"
	NameFailedCalls = "decorated_call_failures"
	LabelCall       = "call"
)

var TotalCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalCalls,
		Help:      "Total decorated calls",
		Namespace: Namespace,
	},
	[]string{LabelCall},
)

var FailedCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameFailedCalls,
		Help:      "Failed decorated calls",
		Namespace: Namespace,
	},
	[]string{LabelCall},
)
