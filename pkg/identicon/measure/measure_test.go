package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/identicon/measure"
)

func TestDefaultMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	metric := msr.AddMetric("hash")

	assert.Same(t, metric, msr.GetMetric("hash"))
	assert.Nil(t, msr.GetMetric("unknown"))
	assert.Len(t, msr.AllMetrics(), 1)
}

func TestDefaultMetricAVGDuration(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	metric := msr.AddMetric("draw")

	assert.Equal(t, time.Duration(0), metric.AVGDuration())

	metric.AddDuration(10 * time.Millisecond)
	metric.AddDuration(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, metric.AVGDuration())
}

func TestDefaultMetricTotalDuration(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	metric := msr.AddMetric("save")

	require.Equal(t, time.Duration(0), metric.GetTotalDuration())

	metric.SetTotalDuration(3 * time.Second)
	assert.Equal(t, 3*time.Second, metric.GetTotalDuration())
}
