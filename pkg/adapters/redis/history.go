// Package redis provides a Redis-backed history store, for hosts that
// keep performance history across process restarts.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/strobe/pkg/domain"
)

const defaultKey = "strobe:history"

// History implements ports.HistoryStore on a capped Redis list
// (LPUSH + LTRIM keeps the newest N entries).
type History struct {
	client   *backend.Client
	key      string
	capacity int
}

// Option configures a History.
type Option func(*History)

// WithKey overrides the list key. Default "strobe:history".
func WithKey(key string) Option {
	return func(h *History) {
		h.key = key
	}
}

// WithCapacity overrides the default capacity (domain.HistoryCapacity).
func WithCapacity(capacity int) Option {
	return func(h *History) {
		if capacity > 0 {
			h.capacity = capacity
		}
	}
}

// NewFromClient creates a history store on an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *History {
	h := &History{
		client:   client,
		key:      defaultKey,
		capacity: domain.HistoryCapacity,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Append pushes the record and trims the list to capacity, evicting the
// oldest entries.
func (h *History) Append(ctx context.Context, record domain.PerformanceRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode performance record: %w", err)
	}

	pipe := h.client.TxPipeline()
	pipe.LPush(ctx, h.key, payload)
	pipe.LTrim(ctx, h.key, 0, int64(h.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis error appending record: %w", err)
	}
	return nil
}

// List returns all records, oldest first.
func (h *History) List(ctx context.Context) ([]domain.PerformanceRecord, error) {
	raw, err := h.client.LRange(ctx, h.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error listing records: %w", err)
	}

	// LPUSH stores newest at index 0; reverse to oldest-first.
	records := make([]domain.PerformanceRecord, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var record domain.PerformanceRecord
		if err := json.Unmarshal([]byte(raw[i]), &record); err != nil {
			return nil, fmt.Errorf("failed to decode performance record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Clear removes the history list.
func (h *History) Clear(ctx context.Context) error {
	if err := h.client.Del(ctx, h.key).Err(); err != nil {
		return fmt.Errorf("redis error clearing history: %w", err)
	}
	return nil
}
