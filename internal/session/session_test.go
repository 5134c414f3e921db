package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, ttl), mr
}

func TestSessionLifecycle(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, ok, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	require.NoError(t, store.Destroy(ctx, sid))

	_, ok, err = store.Get(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionUnknownID(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, ok, err := store.Get(context.Background(), "not-a-session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	sid, err := store.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionIDsAreUnique(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		sid, err := store.Create(ctx, uint(i+1))
		require.NoError(t, err)
		require.False(t, seen[sid], "duplicate session id %s", sid)
		seen[sid] = true
	}
}

func TestSessionStoreUnavailable(t *testing.T) {
	store := NewStore(nil, time.Hour)

	_, err := store.Create(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, _, err = store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
