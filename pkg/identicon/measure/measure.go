package measure

import (
	"sync"
)

// DefaultMeasure keeps one metric per stage. Metrics are registered
// before the pipeline runs, so the map itself is never written
// concurrently.
type DefaultMeasure struct {
	Stages map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Stages: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.Stages[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	return m.Stages[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	return m.Stages
}

var _ Measure = (*DefaultMeasure)(nil)
