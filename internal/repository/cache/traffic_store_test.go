package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

func newTestStore(t *testing.T) (*trafficStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &trafficStore{client: client, logger: zap.NewNop()}, mr
}

func TestTrafficStore_GetMiss(t *testing.T) {
	store, _ := newTestStore(t)

	snap, found, err := store.Get(context.Background(), "vegas")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, snap)
}

func TestTrafficStore_UpsertAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	queried := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	snap := &domain.TrafficSnapshot{
		PointID:       "vegas",
		CurrentSpeed:  35,
		FreeFlowSpeed: 50,
		Confidence:    1.0,
		Synthetic:     true,
		QueriedAt:     queried,
	}

	require.NoError(t, store.Upsert(ctx, snap))

	got, found, err := store.Get(ctx, "vegas")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap.PointID, got.PointID)
	assert.Equal(t, snap.CurrentSpeed, got.CurrentSpeed)
	assert.True(t, got.Synthetic)
	assert.True(t, got.QueriedAt.Equal(queried))
}

func TestTrafficStore_UpsertOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &domain.TrafficSnapshot{
		PointID: "cra49", CurrentSpeed: 18, Synthetic: true,
	}))
	require.NoError(t, store.Upsert(ctx, &domain.TrafficSnapshot{
		PointID: "cra49", CurrentSpeed: 40, Synthetic: false,
	}))

	got, found, err := store.Get(ctx, "cra49")
	require.NoError(t, err)
	require.True(t, found)

	// One snapshot per point, last writer wins.
	assert.Equal(t, 40.0, got.CurrentSpeed)
	assert.False(t, got.Synthetic)
}

func TestTrafficStore_KeysHaveNoExpiry(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Upsert(context.Background(), &domain.TrafficSnapshot{PointID: "vegas"}))

	// Freshness is judged by the reader, never by Redis eviction.
	assert.Equal(t, time.Duration(0), mr.TTL("traffic:snapshot:vegas"))
}
