// Package file implements the history store on the local filesystem,
// for single-user CLI hosts that want records to survive restarts
// without a Redis.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/strobe/pkg/domain"
)

// History implements ports.HistoryStore as one JSON file.
type History struct {
	path     string
	capacity int
	mu       sync.Mutex
}

// Option configures the History.
type Option func(*History)

// WithCapacity overrides the default record capacity.
func WithCapacity(capacity int) Option {
	return func(h *History) {
		h.capacity = capacity
	}
}

// NewHistory creates a file-backed history. An empty path defaults to
// .strobe/history.json.
func NewHistory(path string, opts ...Option) *History {
	if path == "" {
		path = filepath.Join(".strobe", "history.json")
	}
	h := &History{
		path:     path,
		capacity: domain.HistoryCapacity,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append adds a record, evicting the oldest beyond capacity.
func (h *History) Append(ctx context.Context, record domain.PerformanceRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.read()
	if err != nil {
		return err
	}

	records = append(records, record)
	if len(records) > h.capacity {
		records = records[len(records)-h.capacity:]
	}
	return h.write(records)
}

// List returns all records, oldest first.
func (h *History) List(ctx context.Context) ([]domain.PerformanceRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.read()
}

// Clear removes the history file.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear history file: %w", err)
	}
	return nil
}

func (h *History) read() ([]domain.PerformanceRecord, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var records []domain.PerformanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return records, nil
}

func (h *History) write(records []domain.PerformanceRecord) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
