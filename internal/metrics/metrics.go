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

// Raid Metrics
var (
	TapsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTapsApplied,
			Help: HelpTextTapsApplied,
		},
	)

	DamageDealt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
	)

	CritsLanded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCritsLanded,
			Help: HelpTextCritsLanded,
		},
	)

	BossesKilled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBossesKilled,
			Help: HelpTextBossesKilled,
		},
		[]string{LabelBoss},
	)

	RagePhases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRagePhases,
			Help: HelpTextRagePhases,
		},
		[]string{LabelBoss, LabelPhase},
	)

	PlayersOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayersOnline,
			Help: HelpTextPlayersOnline,
		},
	)

	RewardsDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsDistributed,
			Help: HelpTextRewardsDistributed,
		},
	)

	RewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardsClaimed,
			Help: HelpTextRewardsClaimed,
		},
	)

	SSEClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
