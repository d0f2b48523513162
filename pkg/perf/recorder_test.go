package perf_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/strobe/pkg/adapters/memory"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/perf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_PopulatesRecord(t *testing.T) {
	fixed := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)
	recorder := perf.NewRecorder(perf.WithClock(func() time.Time { return fixed }))

	record := recorder.Record(context.Background(), domain.FamilySorting, "Bubble Sort",
		42*time.Millisecond, domain.Counters{Comparisons: 3, Mutations: 2}, 50)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Bubble Sort", record.Algorithm)
	assert.Equal(t, domain.FamilySorting, record.Family)
	assert.Equal(t, 42*time.Millisecond, record.GenerationTime)
	assert.Equal(t, 3, record.Comparisons)
	assert.Equal(t, 2, record.Mutations)
	assert.Equal(t, fixed, record.Timestamp)
	assert.Greater(t, record.MemoryEstimateKB, 0)
}

func TestRecord_CallbackAndStore(t *testing.T) {
	store := memory.NewHistory()
	var delivered []domain.PerformanceRecord
	recorder := perf.NewRecorder(
		perf.WithStore(store),
		perf.WithCallback(func(r domain.PerformanceRecord) {
			delivered = append(delivered, r)
		}),
	)

	ctx := context.Background()
	recorder.Record(ctx, domain.FamilySearching, "Binary Search", time.Millisecond, domain.Counters{Comparisons: 2}, 5)
	recorder.Record(ctx, domain.FamilySearching, "Binary Search", time.Millisecond, domain.Counters{Comparisons: 2}, 5)

	require.Len(t, delivered, 2)
	assert.NotEqual(t, delivered[0].ID, delivered[1].ID)
	assert.False(t, delivered[1].Timestamp.Before(delivered[0].Timestamp))

	stored, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRecord_NoCallbackNoStore(t *testing.T) {
	recorder := perf.NewRecorder()

	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), domain.FamilyGraph, "Kruskal MST", 0, domain.Counters{}, 8)
	})
}
