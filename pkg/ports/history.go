package ports

import (
	"context"

	"github.com/aretw0/strobe/pkg/domain"
)

// HistoryStore persists the bounded performance record history. Stores
// are FIFO-bounded: appending beyond capacity evicts the oldest record.
type HistoryStore interface {
	// Append adds a record to the history, evicting the oldest entry
	// if the store is at capacity.
	Append(ctx context.Context, record domain.PerformanceRecord) error

	// List returns all records, oldest first.
	List(ctx context.Context) ([]domain.PerformanceRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
