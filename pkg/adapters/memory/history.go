// Package memory provides the in-process history store.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/strobe/pkg/domain"
)

// History implements ports.HistoryStore as a bounded in-memory FIFO.
// Safe for concurrent use.
type History struct {
	capacity int
	records  []domain.PerformanceRecord
	mu       sync.RWMutex
}

// Option configures a History.
type Option func(*History)

// WithCapacity overrides the default capacity (domain.HistoryCapacity).
func WithCapacity(capacity int) Option {
	return func(h *History) {
		if capacity > 0 {
			h.capacity = capacity
		}
	}
}

// NewHistory creates an empty bounded history.
func NewHistory(opts ...Option) *History {
	h := &History{capacity: domain.HistoryCapacity}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append adds a record, evicting the oldest when at capacity.
func (h *History) Append(ctx context.Context, record domain.PerformanceRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
	if len(h.records) > h.capacity {
		h.records = h.records[len(h.records)-h.capacity:]
	}
	return nil
}

// List returns all records, oldest first. The returned slice is a copy
// so callers cannot mutate store state.
func (h *History) List(ctx context.Context) ([]domain.PerformanceRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	records := make([]domain.PerformanceRecord, len(h.records))
	copy(records, h.records)
	return records, nil
}

// Clear removes all records.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
	return nil
}
