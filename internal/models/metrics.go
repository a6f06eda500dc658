package models

// PerformanceMetrics is the observability snapshot exposed by the search
// service: rolling upstream latency, breaker state, and cache size.
type PerformanceMetrics struct {
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	TotalSamples int     `json:"total_samples"`
	FailureCount int     `json:"failure_count"`
	CircuitOpen  bool    `json:"circuit_open"`
	CacheSize    int     `json:"cache_size"`
}
