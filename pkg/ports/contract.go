package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/strobe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHistoryStoreContract exercises the behavior every HistoryStore
// implementation must satisfy. Adapter tests call it with a fresh
// store; capacity-specific eviction is tested per adapter.
func RunHistoryStoreContract(t *testing.T, store HistoryStore) {
	t.Helper()
	ctx := context.Background()

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "fresh store must list empty")

	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	for i, name := range []string{"Bubble Sort", "Binary Search", "A*"} {
		err := store.Append(ctx, domain.PerformanceRecord{
			ID:          name,
			Algorithm:   name,
			Family:      domain.FamilySorting,
			Comparisons: i,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	records, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Bubble Sort", records[0].Algorithm, "oldest first")
	assert.Equal(t, "A*", records[2].Algorithm)

	require.NoError(t, store.Clear(ctx))
	records, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
