package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cruise_manager"

var (
	QuotesComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_computed_total",
		Help:      "The total number of quotes computed",
	}, []string{"surface"})

	Payments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Payments recorded, by final status",
	}, []string{"status"})

	GatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_gateway_seconds",
		Help:      "Time taken by payment gateway calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "The total number of direct messages sent",
	})

	ErrorsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "The total number of errors",
	}, []string{"operation"})
)
