/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"sync"

	"github.com/mfreeman451/streamdash/pkg/models"
)

// RingBuffer keeps the most recent samples up to a fixed capacity. When full,
// each Add overwrites the oldest entry.
type RingBuffer struct {
	mu      sync.RWMutex
	samples []models.MetricsSample
	start   int // index of the oldest sample
	count   int
}

// NewBuffer creates a HistoryStore with the default history size.
func NewBuffer() HistoryStore {
	return NewRingBuffer(models.DefaultHistorySize)
}

// NewRingBuffer creates a RingBuffer holding at most size samples.
// A non-positive size, or one above models.DefaultHistorySize, falls back
// to models.DefaultHistorySize.
func NewRingBuffer(size int) *RingBuffer {
	if size <= 0 || size > models.DefaultHistorySize {
		size = models.DefaultHistorySize
	}

	return &RingBuffer{
		samples: make([]models.MetricsSample, size),
	}
}

// Add appends a sample, evicting the oldest one if the buffer is full.
func (b *RingBuffer) Add(sample models.MetricsSample) {
	b.mu.Lock()
	defer b.mu.Unlock()

	size := len(b.samples)
	sample = sample.Clone()

	if b.count < size {
		b.samples[(b.start+b.count)%size] = sample
		b.count++

		return
	}

	b.samples[b.start] = sample
	b.start = (b.start + 1) % size
}

// Samples returns a copy of the buffered samples, oldest first.
func (b *RingBuffer) Samples() []models.MetricsSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	size := len(b.samples)
	out := make([]models.MetricsSample, 0, b.count)

	for i := 0; i < b.count; i++ {
		out = append(out, b.samples[(b.start+i)%size].Clone())
	}

	return out
}

// Last returns the newest sample, or nil if the buffer is empty.
func (b *RingBuffer) Last() *models.MetricsSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	last := b.samples[(b.start+b.count-1)%len(b.samples)].Clone()

	return &last
}

// Len returns the number of buffered samples.
func (b *RingBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.count
}

// Cap returns the buffer capacity.
func (b *RingBuffer) Cap() int {
	return len(b.samples)
}

// Reset drops every buffered sample.
func (b *RingBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.samples {
		b.samples[i] = models.MetricsSample{}
	}

	b.start = 0
	b.count = 0
}
