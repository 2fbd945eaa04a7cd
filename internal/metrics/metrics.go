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

// Game Metrics
var (
	ActionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsStarted,
			Help: HelpTextActionsStarted,
		},
		[]string{LabelAction},
	)

	ActionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsCompleted,
			Help: HelpTextActionsCompleted,
		},
		[]string{LabelAction},
	)

	ActionsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsCancelled,
			Help: HelpTextActionsCancelled,
		},
		[]string{LabelAction, LabelReason},
	)

	ActionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsRejected,
			Help: HelpTextActionsRejected,
		},
		[]string{LabelAction},
	)

	StagesAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStagesAdvanced,
			Help: HelpTextStagesAdvanced,
		},
		[]string{LabelAction},
	)

	ResourcesGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesGranted,
			Help: HelpTextResourcesGranted,
		},
		[]string{LabelResource},
	)

	ResourcesProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesProduced,
			Help: HelpTextResourcesProduced,
		},
		[]string{LabelJob, LabelResource},
	)

	UpkeepShortfalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpkeepShortfalls,
			Help: HelpTextUpkeepShortfalls,
		},
		[]string{LabelJob},
	)

	BuildingsConstructed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsBuilt,
			Help: HelpTextBuildingsBuilt,
		},
		[]string{LabelBuilding},
	)

	FlagsSet = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFlagsSet,
			Help: HelpTextFlagsSet,
		},
		[]string{LabelFlag},
	)

	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
		[]string{LabelResult},
	)

	CrewAssigned = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCrewAssigned,
			Help: HelpTextCrewAssigned,
		},
		[]string{LabelJob},
	)
)
