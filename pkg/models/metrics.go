// Package models pkg/models/metrics.go
package models

import "time"

// DefaultHistorySize is the number of samples kept in the rolling metrics history.
const DefaultHistorySize = 100

// MetricsSample is one complete snapshot of stream statistics at a point in time.
type MetricsSample struct {
	Timestamp         time.Time          `json:"timestamp"`
	MessagesPerSecond float64            `json:"messages_per_second"`
	BytesPerSecond    float64            `json:"bytes_per_second"`
	ErrorRate         float64            `json:"error_rate"`
	Throughput        float64            `json:"throughput"`
	LatencyMs         float64            `json:"latency_ms"`
	PartitionLag      map[string]float64 `json:"partition_lag"`
}

// Clone returns a deep copy of the sample.
func (s MetricsSample) Clone() MetricsSample {
	out := s
	out.PartitionLag = make(map[string]float64, len(s.PartitionLag))

	for k, v := range s.PartitionLag {
		out.PartitionLag[k] = v
	}

	return out
}

// MetricsPatch is a partial MetricsSample. A nil field is absent and leaves
// the corresponding current value untouched when merged.
type MetricsPatch struct {
	Timestamp         *time.Time         `json:"timestamp,omitempty"`
	MessagesPerSecond *float64           `json:"messages_per_second,omitempty"`
	BytesPerSecond    *float64           `json:"bytes_per_second,omitempty"`
	ErrorRate         *float64           `json:"error_rate,omitempty"`
	Throughput        *float64           `json:"throughput,omitempty"`
	LatencyMs         *float64           `json:"latency_ms,omitempty"`
	PartitionLag      map[string]float64 `json:"partition_lag,omitempty"`
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 {
	return &v
}

// Time returns a pointer to t, for building patches.
func Time(t time.Time) *time.Time {
	return &t
}

// Merge overlays every present field of patch onto p. Fields absent from
// patch keep their current value.
func (p MetricsPatch) Merge(patch MetricsPatch) MetricsPatch {
	out := p.Clone()

	if patch.Timestamp != nil {
		out.Timestamp = Time(*patch.Timestamp)
	}

	if patch.MessagesPerSecond != nil {
		out.MessagesPerSecond = Float(*patch.MessagesPerSecond)
	}

	if patch.BytesPerSecond != nil {
		out.BytesPerSecond = Float(*patch.BytesPerSecond)
	}

	if patch.ErrorRate != nil {
		out.ErrorRate = Float(*patch.ErrorRate)
	}

	if patch.Throughput != nil {
		out.Throughput = Float(*patch.Throughput)
	}

	if patch.LatencyMs != nil {
		out.LatencyMs = Float(*patch.LatencyMs)
	}

	if patch.PartitionLag != nil {
		out.PartitionLag = copyLag(patch.PartitionLag)
	}

	return out
}

// Clone returns a copy of the patch that shares no memory with p.
func (p MetricsPatch) Clone() MetricsPatch {
	var out MetricsPatch

	if p.Timestamp != nil {
		out.Timestamp = Time(*p.Timestamp)
	}

	if p.MessagesPerSecond != nil {
		out.MessagesPerSecond = Float(*p.MessagesPerSecond)
	}

	if p.BytesPerSecond != nil {
		out.BytesPerSecond = Float(*p.BytesPerSecond)
	}

	if p.ErrorRate != nil {
		out.ErrorRate = Float(*p.ErrorRate)
	}

	if p.Throughput != nil {
		out.Throughput = Float(*p.Throughput)
	}

	if p.LatencyMs != nil {
		out.LatencyMs = Float(*p.LatencyMs)
	}

	if p.PartitionLag != nil {
		out.PartitionLag = copyLag(p.PartitionLag)
	}

	return out
}

// Complete turns the patch into a full sample. Absent numeric fields become
// zero, an absent timestamp becomes now and PartitionLag is never nil.
func (p MetricsPatch) Complete(now time.Time) MetricsSample {
	s := MetricsSample{
		Timestamp:         now,
		MessagesPerSecond: deref(p.MessagesPerSecond),
		BytesPerSecond:    deref(p.BytesPerSecond),
		ErrorRate:         deref(p.ErrorRate),
		Throughput:        deref(p.Throughput),
		LatencyMs:         deref(p.LatencyMs),
		PartitionLag:      map[string]float64{},
	}

	if p.Timestamp != nil {
		s.Timestamp = *p.Timestamp
	}

	for k, v := range p.PartitionLag {
		s.PartitionLag[k] = v
	}

	return s
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func copyLag(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
