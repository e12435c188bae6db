// Copyright 2025 Edgeo SCADA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snmp

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a simple atomic counter.
type Counter struct {
	value int64
}

// Add adds a value to the counter.
func (c *Counter) Add(delta int64) {
	atomic.AddInt64(&c.value, delta)
}

// Value returns the current counter value.
func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// LatencyHistogram tracks request latency.
type LatencyHistogram struct {
	mu    sync.RWMutex
	count int64
	sum   time.Duration
	min   time.Duration
	max   time.Duration
}

// Observe records one request duration.
func (h *LatencyHistogram) Observe(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count == 0 || d < h.min {
		h.min = d
	}
	if d > h.max {
		h.max = d
	}
	h.count++
	h.sum += d
}

// Stats returns histogram statistics.
func (h *LatencyHistogram) Stats() LatencyStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := LatencyStats{
		Count: h.count,
		Min:   h.min,
		Max:   h.max,
	}
	if h.count > 0 {
		stats.Avg = h.sum / time.Duration(h.count)
	}
	return stats
}

// LatencyStats contains latency statistics.
type LatencyStats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Metrics contains client metrics.
type Metrics struct {
	ConnectionAttempts Counter
	RequestsSent       Counter
	ResponsesReceived  Counter
	Errors             Counter
	VarbindsReceived   Counter

	RequestLatency LatencyHistogram
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	ConnectionAttempts int64
	RequestsSent       int64
	ResponsesReceived  int64
	Errors             int64
	VarbindsReceived   int64
	RequestLatency     LatencyStats
}

// Snapshot returns a copy of the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ConnectionAttempts: m.ConnectionAttempts.Value(),
		RequestsSent:       m.RequestsSent.Value(),
		ResponsesReceived:  m.ResponsesReceived.Value(),
		Errors:             m.Errors.Value(),
		VarbindsReceived:   m.VarbindsReceived.Value(),
		RequestLatency:     m.RequestLatency.Stats(),
	}
}
