package xrpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atty_xrpc_requests_total",
	Help: "XRPC requests made, by method and response status",
}, []string{"method", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "atty_xrpc_request_duration_seconds",
	Help:    "Round-trip time of XRPC requests",
	Buckets: prometheus.ExponentialBucketsRange(0.005, 20, 16),
}, []string{"method", "status"})
