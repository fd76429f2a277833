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

// Command Metrics
var (
	CommandsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsExecuted,
			Help: HelpTextCommandsExecuted,
		},
		[]string{LabelCommand},
	)

	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrors,
			Help: HelpTextCommandErrors,
		},
		[]string{LabelCommand},
	)
)

// Garden Metrics
var (
	SeedsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPlanted,
			Help: HelpTextSeedsPlanted,
		},
		[]string{LabelSpecies},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsHarvested,
			Help: HelpTextPlantsHarvested,
		},
		[]string{LabelSpecies, LabelBand},
	)

	ItemsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsHarvested,
			Help: HelpTextItemsHarvested,
		},
		[]string{LabelKind, LabelSpecies},
	)

	SpeciesIdentified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpeciesIdentified,
			Help: HelpTextSpeciesIdentified,
		},
		[]string{LabelSpecies},
	)

	LoginRewards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLoginRewards,
			Help: HelpTextLoginRewards,
		},
	)
)

// Persistence Metrics
var (
	StateSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateSaves,
			Help: HelpTextStateSaves,
		},
	)

	StateSaveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStateSaveErrors,
			Help: HelpTextStateSaveErrors,
		},
	)

	StateSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStateSaveDuration,
			Help:    HelpTextStateSaveDuration,
			Buckets: SaveLatencyBuckets,
		},
	)
)
