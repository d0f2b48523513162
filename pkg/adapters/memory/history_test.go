package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/strobe/pkg/adapters/memory"
	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryHistory_Contract(t *testing.T) {
	ports.RunHistoryStoreContract(t, memory.NewHistory())
}

func TestMemoryHistory_EvictsOldestBeyondCapacity(t *testing.T) {
	store := memory.NewHistory(memory.WithCapacity(3))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := store.Append(ctx, domain.PerformanceRecord{
			ID:        fmt.Sprintf("run-%d", i),
			Algorithm: "Bubble Sort",
		})
		require.NoError(t, err)
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "run-2", records[0].ID, "oldest two evicted")
	assert.Equal(t, "run-4", records[2].ID)
}

func TestMemoryHistory_ListReturnsCopy(t *testing.T) {
	store := memory.NewHistory()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, domain.PerformanceRecord{ID: "a"}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	records[0].ID = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].ID)
}
