package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP latency histogram buckets in seconds. Upper buckets are wide because
// a round response blocks for the whole reveal animation.
var HTTPLatencyBuckets = []float64{0.005, 0.05, 0.5, 1, 2.5, 5, 10, 30}

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

// Game Metrics
var (
	RoundsPlayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsPlayed,
			Help: HelpTextRoundsPlayed,
		},
		[]string{LabelSide, LabelCombination},
	)

	PayoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayoutTotal,
			Help: HelpTextPayoutTotal,
		},
		[]string{LabelDirection},
	)

	Rerolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRerolls,
			Help: HelpTextRerolls,
		},
		[]string{LabelSide},
	)

	RevealDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRevealDuration,
			Help:    HelpTextRevealDuration,
			Buckets: []float64{1, 1.5, 2, 2.5, 3, 3.5, 4},
		},
		[]string{LabelSide},
	)
)
