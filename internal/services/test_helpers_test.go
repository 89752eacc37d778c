package services

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

func newTestLogger() CustomerLoggerInterface {
	return NewCustomerLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// recordingMetrics captures metric calls for assertions
type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]int
	gauges   map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters: make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	if status := tags["status"]; status != "" {
		key = name + ":" + status
	}
	m.counters[key]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, duration time.Duration) {}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := name
	if status := tags["status"]; status != "" {
		key = name + ":" + status
	}
	m.gauges[key] = value
}

func (m *recordingMetrics) counterValue(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[key]
}
