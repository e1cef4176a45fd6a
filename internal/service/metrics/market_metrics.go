package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// EndpointLatency tracks market API endpoint latency.
	EndpointLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gridpulse",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of market API endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// EndpointErrors counts failures by market API endpoint.
	EndpointErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridpulse",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by market API endpoint",
		},
		[]string{"endpoint"},
	)
)

// Register installs the collectors exactly once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(EndpointLatency, EndpointErrors)
	})
}
