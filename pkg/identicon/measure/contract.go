package measure

import "time"

// Measure collects one Metric per pipeline stage.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the durations of a single stage across runs.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
