package stores

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/campus/internal/core/kv"
	"github.com/colonyops/campus/internal/data/db"
)

// kvBackend is a KV under test plus a way to move its clock forward.
type kvBackend struct {
	store   kv.KV
	advance func(time.Duration)
}

func newSQLiteBackend(t *testing.T) kvBackend {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	now := time.Now()
	store := NewKVStore(database)
	store.now = func() time.Time { return now }

	return kvBackend{
		store:   store,
		advance: func(d time.Duration) { now = now.Add(d) },
	}
}

func newRedisBackend(t *testing.T) kvBackend {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Now()
	store := NewRedisKV(client, "")
	store.now = func() time.Time { return now }

	return kvBackend{
		store: store,
		advance: func(d time.Duration) {
			now = now.Add(d)
			mr.FastForward(d)
		},
	}
}

func eachBackend(t *testing.T, fn func(t *testing.T, b kvBackend)) {
	t.Helper()
	backends := map[string]func(*testing.T) kvBackend{
		"sqlite": newSQLiteBackend,
		"redis":  newRedisBackend,
	}
	for name, newBackend := range backends {
		t.Run(name, func(t *testing.T) {
			fn(t, newBackend(t))
		})
	}
}

func TestKV_SetAndGet(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		type payload struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}

		require.NoError(t, b.store.Set(ctx, "test-key", payload{Name: "hello", Value: 42}))

		var got payload
		require.NoError(t, b.store.Get(ctx, "test-key", &got))
		assert.Equal(t, "hello", got.Name)
		assert.Equal(t, 42, got.Value)
	})
}

func TestKV_GetNotFound(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		var v string
		err := b.store.Get(context.Background(), "nonexistent", &v)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestKV_SetOverwrite(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.Set(ctx, "key", "first"))
		b.advance(time.Second)
		require.NoError(t, b.store.Set(ctx, "key", "second"))

		var got string
		require.NoError(t, b.store.Get(ctx, "key", &got))
		assert.Equal(t, "second", got)

		entry, err := b.store.GetRaw(ctx, "key")
		require.NoError(t, err)
		assert.True(t, entry.UpdatedAt.After(entry.CreatedAt), "overwrite keeps the original creation time")
	})
}

func TestKV_DeleteAndHas(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		has, err := b.store.Has(ctx, "key")
		require.NoError(t, err)
		assert.False(t, has)

		require.NoError(t, b.store.Set(ctx, "key", true))
		has, err = b.store.Has(ctx, "key")
		require.NoError(t, err)
		assert.True(t, has)

		require.NoError(t, b.store.Delete(ctx, "key"))
		has, err = b.store.Has(ctx, "key")
		require.NoError(t, err)
		assert.False(t, has)

		// deleting a missing key is not an error
		assert.NoError(t, b.store.Delete(ctx, "key"))
	})
}

func TestKV_ListKeys(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.Set(ctx, "b", 1))
		require.NoError(t, b.store.Set(ctx, "a", 2))
		require.NoError(t, b.store.Set(ctx, "c", 3))

		keys, err := b.store.ListKeys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})
}

func TestKV_GetRaw(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.Set(ctx, "raw-test", map[string]int{"x": 1}))

		entry, err := b.store.GetRaw(ctx, "raw-test")
		require.NoError(t, err)
		assert.Equal(t, "raw-test", entry.Key)
		assert.Contains(t, string(entry.Value), `"x":1`)
		assert.Nil(t, entry.ExpiresAt)
		assert.False(t, entry.CreatedAt.IsZero())
	})
}

func TestKV_TTLExpiry(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.SetTTL(ctx, "ephemeral", "gone", time.Minute))

		entry, err := b.store.GetRaw(ctx, "ephemeral")
		require.NoError(t, err)
		require.NotNil(t, entry.ExpiresAt)

		b.advance(2 * time.Minute)

		var v string
		require.ErrorIs(t, b.store.Get(ctx, "ephemeral", &v), sql.ErrNoRows)

		has, err := b.store.Has(ctx, "ephemeral")
		require.NoError(t, err)
		assert.False(t, has)

		_, err = b.store.GetRaw(ctx, "ephemeral")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestKV_SetClearsTTL(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.SetTTL(ctx, "key", "temp", time.Minute))
		require.NoError(t, b.store.Set(ctx, "key", "forever"))

		b.advance(2 * time.Minute)

		var v string
		require.NoError(t, b.store.Get(ctx, "key", &v))
		assert.Equal(t, "forever", v)
	})
}

func TestKV_NonPositiveTTLDeletes(t *testing.T) {
	eachBackend(t, func(t *testing.T, b kvBackend) {
		ctx := context.Background()

		require.NoError(t, b.store.Set(ctx, "zero", "v"))
		require.NoError(t, b.store.SetTTL(ctx, "zero", "v", 0))
		require.NoError(t, b.store.SetTTL(ctx, "negative", "v", -time.Second))

		for _, k := range []string{"zero", "negative"} {
			has, err := b.store.Has(ctx, k)
			require.NoError(t, err)
			assert.False(t, has, k)
		}

		keys, err := b.store.ListKeys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestKVStore_SweepExpired(t *testing.T) {
	b := newSQLiteBackend(t)
	ctx := context.Background()

	require.NoError(t, b.store.Set(ctx, "permanent", "stays"))
	require.NoError(t, b.store.SetTTL(ctx, "expired", "goes", time.Minute))

	b.advance(2 * time.Minute)

	sweeper, ok := b.store.(kv.Sweeper)
	require.True(t, ok)
	require.NoError(t, sweeper.SweepExpired(ctx))

	keys, err := b.store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"permanent"}, keys)
}

func TestRedisKV_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, mr.Set("unrelated", "x"))

	store := NewRedisKV(client, "test:")
	require.NoError(t, store.Set(context.Background(), "onboarding:completed", true))

	assert.True(t, mr.Exists("test:onboarding:completed"))

	keys, err := store.ListKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"onboarding:completed"}, keys)
}

func TestOpenRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := OpenRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
