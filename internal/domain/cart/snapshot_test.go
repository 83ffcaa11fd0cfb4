package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemorySnapshotStore(func() time.Time { return now })

	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	lines := []Line{{ProductID: 1, Quantity: 2}}
	require.NoError(t, store.Save(ctx, &Snapshot{UserID: 1, Lines: lines, SavedAt: now}, 10*time.Minute))

	// the store keeps its own copy
	lines[0].Quantity = 9

	snapshot, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []Line{{ProductID: 1, Quantity: 2}}, snapshot.Lines)

	now = now.Add(10 * time.Minute)
	_, err = store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestRedisSnapshotStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisSnapshotStore(client)

	_, err := store.Load(ctx, 5)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	saved := &Snapshot{
		UserID:  5,
		Lines:   []Line{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
		SavedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, saved, 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL("cart:snapshot:5"))

	loaded, err := store.Load(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, saved.Lines, loaded.Lines)
	assert.True(t, saved.SavedAt.Equal(loaded.SavedAt))

	mr.FastForward(31 * time.Minute)
	_, err = store.Load(ctx, 5)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, saved, time.Minute))
	require.NoError(t, store.Delete(ctx, 5))
	_, err = store.Load(ctx, 5)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
