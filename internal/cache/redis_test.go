package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	require.NotNil(t, client, "test redis did not connect")
	t.Cleanup(func() { client = nil })
	return mr
}

func TestAsideLoadsOnceThenServesFromCache(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	loads := 0
	load := func(dest *cachedThing) func() error {
		return func() error {
			loads++
			*dest = cachedThing{ID: 1, Name: "alice"}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "user:1", &first, time.Minute, load(&first)))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "alice", first.Name)

	var second cachedThing
	require.NoError(t, Aside(ctx, "user:1", &second, time.Minute, load(&second)))
	assert.Equal(t, 1, loads, "second read should hit the cache")
	assert.Equal(t, "alice", second.Name)
}

func TestAsideExpiry(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	loads := 0
	var v cachedThing
	load := func() error {
		loads++
		v = cachedThing{ID: 1}
		return nil
	}

	require.NoError(t, Aside(ctx, "user:1", &v, time.Minute, load))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, "user:1", &v, time.Minute, load))
	assert.Equal(t, 2, loads)
}

func TestAsideDropsCorruptEntry(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("user:1", "{not json"))

	loads := 0
	var v cachedThing
	load := func() error {
		loads++
		v = cachedThing{ID: 1, Name: "fresh"}
		return nil
	}

	require.NoError(t, Aside(ctx, "user:1", &v, time.Minute, load))
	assert.Equal(t, 1, loads)
	assert.Equal(t, "fresh", v.Name)
}

func TestAsideDegradesWithoutRedis(t *testing.T) {
	client = nil

	loads := 0
	var v cachedThing
	load := func() error {
		loads++
		return nil
	}

	require.NoError(t, Aside(context.Background(), "user:1", &v, time.Minute, load))
	assert.Equal(t, 1, loads)
}

func TestInvalidate(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey(1), `{"id":1}`))
	InvalidateUser(ctx, 1)
	assert.False(t, mr.Exists(UserKey(1)))

	require.NoError(t, mr.Set(MessageKey(2), `{"id":2}`))
	InvalidateMessage(ctx, 2)
	assert.False(t, mr.Exists(MessageKey(2)))
}
