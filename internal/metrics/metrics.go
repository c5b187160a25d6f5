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

// Business Metrics
var (
	ShiftsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShiftsStarted,
			Help: HelpTextShiftsStarted,
		},
	)

	SalariesClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSalariesClaimed,
			Help: HelpTextSalariesClaimed,
		},
	)

	SalaryPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSalaryPaid,
			Help: HelpTextSalaryPaid,
		},
	)

	ExperienceGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGranted,
			Help: HelpTextExperienceGranted,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	ResearchStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResearchStarted,
			Help: HelpTextResearchStarted,
		},
		[]string{LabelType},
	)

	ResearchCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResearchCompleted,
			Help: HelpTextResearchCompleted,
		},
		[]string{LabelType},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	PartnershipsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePartnershipsBought,
			Help: HelpTextPartnershipsBought,
		},
		[]string{LabelItem},
	)

	IncomeClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIncomeClaimed,
			Help: HelpTextIncomeClaimed,
		},
	)

	DailyRewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewards,
			Help: HelpTextDailyRewards,
		},
	)

	ProductionsJoined = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProductionsJoined,
			Help: HelpTextProductionsJoined,
		},
		[]string{LabelItem},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)
)

// Persistence Metrics
var (
	StateSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateSaves,
			Help: HelpTextStateSaves,
		},
		[]string{LabelBackend},
	)

	StateSaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateSaveFailures,
			Help: HelpTextStateSaveFailures,
		},
		[]string{LabelBackend},
	)

	StateLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStateLoadFailures,
			Help: HelpTextStateLoadFailures,
		},
		[]string{LabelBackend},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	SanitizedLoads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSanitizedLoads,
			Help: HelpTextSanitizedLoads,
		},
	)
)
