package kv_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/campus/internal/core/kv"
	"github.com/colonyops/campus/internal/data/db"
	"github.com/colonyops/campus/internal/data/stores"
)

func newTestKV(t *testing.T) kv.KV {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return stores.NewKVStore(database)
}

func TestTypedKV_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	typed := kv.Scoped[string](store, "test")

	require.NoError(t, typed.Set(ctx, "greeting", "hello"))

	got, err := typed.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestTypedKV_ScopedPrefix(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)

	// Two scoped stores with different namespaces
	alpha := kv.Scoped[int](store, "alpha")
	beta := kv.Scoped[int](store, "beta")

	require.NoError(t, alpha.Set(ctx, "count", 10))
	require.NoError(t, beta.Set(ctx, "count", 20))

	// Each scope sees its own value
	a, err := alpha.Get(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, 10, a)

	b, err := beta.Get(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, 20, b)

	// Raw store sees both with prefixed keys
	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "alpha:count")
	assert.Contains(t, keys, "beta:count")
}

func TestTypedKV_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	typed := kv.Scoped[string](store, "ns")

	require.NoError(t, typed.Set(ctx, "key", "val"))
	require.NoError(t, typed.Delete(ctx, "key"))

	has, err := typed.Has(ctx, "key")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTypedKV_Has(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	typed := kv.Scoped[int](store, "ns")

	has, err := typed.Has(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, typed.Set(ctx, "exists", 1))
	has, err = typed.Has(ctx, "exists")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestTypedKV_SetTTL(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	typed := kv.Scoped[string](store, "ttl")

	require.NoError(t, typed.SetTTL(ctx, "temp", "later", time.Hour))

	entry, err := store.GetRaw(ctx, "ttl:temp")
	require.NoError(t, err)
	require.NotNil(t, entry.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *entry.ExpiresAt, time.Minute)
}

func TestTypedKV_ExpiresAt(t *testing.T) {
	ctx := context.Background()
	typed := kv.Scoped[string](newTestKV(t), "ttl")

	_, ok, err := typed.ExpiresAt(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, typed.Set(ctx, "forever", "v"))
	_, ok, err = typed.ExpiresAt(ctx, "forever")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, typed.SetTTL(ctx, "temp", "v", time.Hour))
	at, ok, err := typed.ExpiresAt(ctx, "temp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), at, time.Minute)
}

func TestTypedKV_GetMissing(t *testing.T) {
	ctx := context.Background()
	typed := kv.Scoped[bool](newTestKV(t), "onboarding")

	got, err := typed.Get(ctx, "completed")
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.False(t, got)
}

func TestTypedKV_StructValue(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)

	type Progress struct {
		CourseID string `json:"course_id"`
		Page     int    `json:"page"`
	}

	typed := kv.Scoped[Progress](store, "tour")
	require.NoError(t, typed.Set(ctx, "last", Progress{CourseID: "bio-101", Page: 3}))

	got, err := typed.Get(ctx, "last")
	require.NoError(t, err)
	assert.Equal(t, "bio-101", got.CourseID)
	assert.Equal(t, 3, got.Page)
}

func TestTypedKV_GetOr(t *testing.T) {
	ctx := context.Background()
	typed := kv.Scoped[int](newTestKV(t), "ns")

	got, err := typed.GetOr(ctx, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	require.NoError(t, typed.Set(ctx, "present", 3))
	got, err = typed.GetOr(ctx, "present", 7)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestTypedKV_Keys(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	tour := kv.Scoped[int](store, "tour")
	other := kv.Scoped[int](store, "tourist")

	require.NoError(t, tour.Set(ctx, "page", 1))
	require.NoError(t, tour.Set(ctx, "seen", 2))
	require.NoError(t, other.Set(ctx, "page", 3))

	keys, err := tour.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"page", "seen"}, keys)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, kv.IsNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, kv.IsNotFound(errors.New("boom")))
	assert.False(t, kv.IsNotFound(nil))
}
