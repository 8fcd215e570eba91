package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campus_client",
			Name:      "requests_total",
			Help:      "Backend responses received, by method and status code.",
		},
		[]string{"method", "code"},
	)

	transportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campus_client",
			Name:      "transport_errors_total",
			Help:      "Requests that failed before any HTTP response arrived.",
		},
		[]string{"method"},
	)

	sessionsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campus_client",
			Name:      "sessions_expired_total",
			Help:      "401 responses that cleared the stored session.",
		},
	)
)
