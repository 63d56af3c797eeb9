// ABOUTME: Query metric model for per-search observability
// ABOUTME: One immutable metric is recorded per completed search
package models

import "time"

// QueryMetric captures what happened during one completed search.
// TopScore is nil when the search returned no results.
type QueryMetric struct {
	ID            string    `json:"-"`
	Query         string    `json:"query"`
	ResultsCount  int       `json:"results_count"`
	LatencyMS     float64   `json:"latency_ms"`
	TopScore      *float64  `json:"top_score"`
	ThresholdUsed float64   `json:"threshold_used"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
}
