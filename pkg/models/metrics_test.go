package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsPatch_Merge(t *testing.T) {
	ts := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		base  MetricsPatch
		patch MetricsPatch
		check func(t *testing.T, got MetricsPatch)
	}{
		{
			name:  "present fields overwrite",
			base:  MetricsPatch{MessagesPerSecond: Float(1), BytesPerSecond: Float(2)},
			patch: MetricsPatch{MessagesPerSecond: Float(3)},
			check: func(t *testing.T, got MetricsPatch) {
				assert.InDelta(t, 3.0, *got.MessagesPerSecond, 0)
				assert.InDelta(t, 2.0, *got.BytesPerSecond, 0)
			},
		},
		{
			name:  "empty patch keeps everything",
			base:  MetricsPatch{Timestamp: Time(ts), LatencyMs: Float(15)},
			patch: MetricsPatch{},
			check: func(t *testing.T, got MetricsPatch) {
				assert.Equal(t, ts, *got.Timestamp)
				assert.InDelta(t, 15.0, *got.LatencyMs, 0)
				assert.Nil(t, got.ErrorRate)
			},
		},
		{
			name:  "partition lag replaced as a whole",
			base:  MetricsPatch{PartitionLag: map[string]float64{"partition-0": 5, "partition-1": 6}},
			patch: MetricsPatch{PartitionLag: map[string]float64{"partition-2": 7}},
			check: func(t *testing.T, got MetricsPatch) {
				assert.Equal(t, map[string]float64{"partition-2": 7}, got.PartitionLag)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.base.Merge(tt.patch))
		})
	}
}

func TestMetricsPatch_MergeDoesNotAlias(t *testing.T) {
	lag := map[string]float64{"partition-0": 1}
	patch := MetricsPatch{Throughput: Float(10), PartitionLag: lag}

	got := MetricsPatch{}.Merge(patch)

	*patch.Throughput = 99
	lag["partition-0"] = 99

	assert.InDelta(t, 10.0, *got.Throughput, 0)
	assert.InDelta(t, 1.0, got.PartitionLag["partition-0"], 0)
}

func TestMetricsPatch_Complete(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	s := MetricsPatch{ErrorRate: Float(0.005)}.Complete(now)

	assert.Equal(t, now, s.Timestamp)
	assert.InDelta(t, 0.005, s.ErrorRate, 0)
	assert.Zero(t, s.MessagesPerSecond)
	require.NotNil(t, s.PartitionLag)
	assert.Empty(t, s.PartitionLag)

	earlier := now.Add(-time.Minute)
	s = MetricsPatch{Timestamp: Time(earlier)}.Complete(now)
	assert.Equal(t, earlier, s.Timestamp)
}

func TestMetricsSample_Clone(t *testing.T) {
	s := MetricsSample{LatencyMs: 20, PartitionLag: map[string]float64{"partition-0": 3}}

	c := s.Clone()
	c.PartitionLag["partition-0"] = 50

	assert.InDelta(t, 3.0, s.PartitionLag["partition-0"], 0)
	assert.InDelta(t, 20.0, c.LatencyMs, 0)
}

func TestUIValidation(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
	assert.True(t, Range30d.Valid())
	assert.False(t, TimeRange("90d").Valid())
}
