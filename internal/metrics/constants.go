package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTreesCreated     = "trees_created_total"
	MetricNameTreesRemoved     = "trees_removed_total"
	MetricNameTreesAdopted     = "trees_adopted_total"
	MetricNameDonationsCreated = "donations_created_total"
	MetricNameDonationAmount   = "donation_amount_naira_total"
	MetricNameTreesFunded      = "trees_funded_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextTreesCreated     = "Total number of trees added to the registry"
	HelpTextTreesRemoved     = "Total number of trees removed from the registry"
	HelpTextTreesAdopted     = "Total number of trees that gained a donor"
	HelpTextDonationsCreated = "Total number of donations recorded"
	HelpTextDonationAmount   = "Total naira pledged through donations"
	HelpTextTreesFunded      = "Total number of trees funded by donations"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelState  = "state"
	LabelTier   = "tier"
)

// UnmatchedRoute labels requests no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
