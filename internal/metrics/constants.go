package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names (debug server)
const (
	MetricNameHTTPRequestsTotal    = "bloom_debug_http_requests_total"
	MetricNameHTTPRequestDuration  = "bloom_debug_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "bloom_debug_http_requests_in_flight"
)

// Game metric names
const (
	MetricNameCommandsExecuted  = "bloom_commands_executed_total"
	MetricNameCommandErrors     = "bloom_command_errors_total"
	MetricNameSeedsPlanted      = "bloom_seeds_planted_total"
	MetricNamePlantsHarvested   = "bloom_plants_harvested_total"
	MetricNameItemsHarvested    = "bloom_items_harvested_total"
	MetricNameSpeciesIdentified = "bloom_species_identified_total"
	MetricNameLoginRewards      = "bloom_login_rewards_total"
	MetricNameStateSaves        = "bloom_state_saves_total"
	MetricNameStateSaveErrors   = "bloom_state_save_errors_total"
	MetricNameStateSaveDuration = "bloom_state_save_duration_seconds"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests to the debug server"
	HelpTextHTTPRequestDuration  = "Debug server HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of debug server HTTP requests being served"

	HelpTextCommandsExecuted  = "Total number of REPL commands executed"
	HelpTextCommandErrors     = "Total number of REPL commands that failed"
	HelpTextSeedsPlanted      = "Total number of seeds planted"
	HelpTextPlantsHarvested   = "Total number of plants harvested, by growth band"
	HelpTextItemsHarvested    = "Total number of items gained from harvests"
	HelpTextSpeciesIdentified = "Total number of species identified"
	HelpTextLoginRewards      = "Total number of login rewards granted"
	HelpTextStateSaves        = "Total number of state snapshots written"
	HelpTextStateSaveErrors   = "Total number of failed state snapshot writes"
	HelpTextStateSaveDuration = "State snapshot write latency in seconds"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelSpecies = "species"
	LabelBand    = "band"
	LabelKind    = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SaveLatencyBuckets covers a local file write up to a slow remote database
var SaveLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1}
