package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TreesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesCreated,
			Help: HelpTextTreesCreated,
		},
		[]string{LabelState},
	)

	TreesRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesRemoved,
			Help: HelpTextTreesRemoved,
		},
		[]string{LabelState},
	)

	TreesAdopted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreesAdopted,
			Help: HelpTextTreesAdopted,
		},
	)

	DonationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDonationsCreated,
			Help: HelpTextDonationsCreated,
		},
		[]string{LabelTier},
	)

	DonationAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDonationAmount,
			Help: HelpTextDonationAmount,
		},
	)

	TreesFunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreesFunded,
			Help: HelpTextTreesFunded,
		},
	)
)
