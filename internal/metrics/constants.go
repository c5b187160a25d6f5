package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameShiftsStarted      = "shifts_started_total"
	MetricNameSalariesClaimed    = "salaries_claimed_total"
	MetricNameSalaryPaid         = "salary_paid_total"
	MetricNameExperienceGranted  = "experience_granted_total"
	MetricNameLevelUps           = "level_ups_total"
	MetricNameResearchStarted    = "research_started_total"
	MetricNameResearchCompleted  = "research_completed_total"
	MetricNameItemsBought        = "items_bought_total"
	MetricNamePartnershipsBought = "partnerships_bought_total"
	MetricNameIncomeClaimed      = "passive_income_claimed_total"
	MetricNameDailyRewards       = "daily_rewards_claimed_total"
	MetricNameProductionsJoined  = "productions_joined_total"
	MetricNameMoneySpent         = "money_spent_total"
)

// Persistence metric names
const (
	MetricNameStateSaves        = "state_saves_total"
	MetricNameStateSaveFailures = "state_save_failures_total"
	MetricNameStateLoadFailures = "state_load_failures_total"
	MetricNameSessionsActive    = "sessions_active"
	MetricNameSanitizedLoads    = "sanitized_loads_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextShiftsStarted      = "Total number of shifts started"
	HelpTextSalariesClaimed    = "Total number of salaries claimed"
	HelpTextSalaryPaid         = "Total currency paid out as salary"
	HelpTextExperienceGranted  = "Total experience granted to players"
	HelpTextLevelUps           = "Total number of player level-ups"
	HelpTextResearchStarted    = "Total number of researches started"
	HelpTextResearchCompleted  = "Total number of researches completed"
	HelpTextItemsBought        = "Total number of inventory items bought"
	HelpTextPartnershipsBought = "Total number of partnerships bought"
	HelpTextIncomeClaimed      = "Total passive income claimed"
	HelpTextDailyRewards       = "Total number of daily rewards claimed"
	HelpTextProductionsJoined  = "Total number of production memberships"
	HelpTextMoneySpent         = "Total money spent on purchases"
)

// Persistence metric help text
const (
	HelpTextStateSaves        = "Total number of state snapshot saves"
	HelpTextStateSaveFailures = "Total number of failed state snapshot saves"
	HelpTextStateLoadFailures = "Total number of failed snapshot loads substituted with defaults"
	HelpTextSessionsActive    = "Current number of active player sessions"
	HelpTextSanitizedLoads    = "Total number of loads that required state repair"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelBackend  = "backend"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
