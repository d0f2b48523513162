// Package perf captures performance records at run completion and
// delivers them to the host through a callback and an optional bounded
// history store.
package perf

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/strobe/internal/logging"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/ports"
)

// Callback receives the record created for a completed run.
type Callback func(domain.PerformanceRecord)

// Recorder creates performance records. Record is synchronous and
// allocation-only: it never blocks the playback controller.
type Recorder struct {
	store    ports.HistoryStore
	callback Callback
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithStore appends every record to the given history store.
func WithStore(store ports.HistoryStore) Option {
	return func(r *Recorder) {
		r.store = store
	}
}

// WithCallback registers the host callback invoked per record.
func WithCallback(callback Callback) Option {
	return func(r *Recorder) {
		r.callback = callback
	}
}

// WithLogger sets the logger for deferred store errors.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// NewRecorder creates a Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		logger: logging.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetCallback replaces the host callback.
func (r *Recorder) SetCallback(callback Callback) {
	r.callback = callback
}

// Record creates the performance record for a completed run, appends it
// to the history store (if any) and invokes the host callback. A store
// failure is logged, never propagated: history persistence must not
// interfere with playback.
func (r *Recorder) Record(ctx context.Context, family domain.Family, algorithm string, generationTime time.Duration, counters domain.Counters, inputSize int) domain.PerformanceRecord {
	record := domain.PerformanceRecord{
		ID:               r.newID(),
		Algorithm:        algorithm,
		Family:           family,
		GenerationTime:   generationTime,
		Comparisons:      counters.Comparisons,
		Mutations:        counters.Mutations,
		MemoryEstimateKB: memoryEstimateKB(family, inputSize),
		Timestamp:        r.now(),
	}

	if r.store != nil {
		if err := r.store.Append(ctx, record); err != nil {
			r.logger.Warn("failed to append performance record", "err", err, "algorithm", algorithm)
		}
	}
	if r.callback != nil {
		r.callback(record)
	}
	return record
}

// memoryEstimateKB approximates the working-set cost of a run: array
// families scale with input size (values plus step-recording overhead),
// tree arenas and graphs use flat estimates.
func memoryEstimateKB(family domain.Family, inputSize int) int {
	switch family {
	case domain.FamilySorting, domain.FamilySearching:
		return inputSize*4/1024 + inputSize*2
	case domain.FamilyPathfinding:
		return domain.GridWidth * domain.GridHeight * 4 / 1024
	case domain.FamilyTree:
		return 50
	}
	return 10
}
