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

// Game metric names
const (
	MetricNameRoundsPlayed   = "rounds_played_total"
	MetricNamePayoutTotal    = "payout_total"
	MetricNameRerolls        = "rerolls_total"
	MetricNameRevealDuration = "reveal_duration_seconds"
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

// Game metric help text
const (
	HelpTextRoundsPlayed   = "Total number of rounds played, by determining side and combination"
	HelpTextPayoutTotal    = "Total chips paid out, by direction"
	HelpTextRerolls        = "Total number of invalid rolls that triggered a reroll"
	HelpTextRevealDuration = "Wall time of one reveal animation attempt in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelSide        = "side"
	LabelCombination = "combination"
	LabelDirection   = "direction"
)

// Payout direction label values
const (
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
)
