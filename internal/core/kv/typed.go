package kv

import (
	"context"
	"strings"
	"time"
)

// TypedKV is a view of a KV store restricted to one namespace and one value
// type. Keys passed to its methods are relative to the namespace.
type TypedKV[T any] struct {
	store  KV
	prefix string
}

// Scoped returns a TypedKV[T] storing its keys as "namespace:key".
func Scoped[T any](store KV, namespace string) *TypedKV[T] {
	return &TypedKV[T]{store: store, prefix: namespace + ":"}
}

func (t *TypedKV[T]) key(k string) string { return t.prefix + k }

func (t *TypedKV[T]) Get(ctx context.Context, key string) (T, error) {
	var v T
	err := t.store.Get(ctx, t.key(key), &v)
	return v, err
}

// GetOr returns fallback when key is missing. Any other error is returned
// together with fallback.
func (t *TypedKV[T]) GetOr(ctx context.Context, key string, fallback T) (T, error) {
	v, err := t.Get(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			err = nil
		}
		return fallback, err
	}
	return v, nil
}

func (t *TypedKV[T]) Set(ctx context.Context, key string, value T) error {
	return t.store.Set(ctx, t.key(key), value)
}

func (t *TypedKV[T]) SetTTL(ctx context.Context, key string, value T, ttl time.Duration) error {
	return t.store.SetTTL(ctx, t.key(key), value, ttl)
}

func (t *TypedKV[T]) Delete(ctx context.Context, key string) error {
	return t.store.Delete(ctx, t.key(key))
}

func (t *TypedKV[T]) Has(ctx context.Context, key string) (bool, error) {
	return t.store.Has(ctx, t.key(key))
}

// ExpiresAt returns when key expires. ok is false when the key is missing or
// has no TTL.
func (t *TypedKV[T]) ExpiresAt(ctx context.Context, key string) (at time.Time, ok bool, err error) {
	entry, err := t.store.GetRaw(ctx, t.key(key))
	switch {
	case IsNotFound(err):
		return time.Time{}, false, nil
	case err != nil:
		return time.Time{}, false, err
	case entry.ExpiresAt == nil:
		return time.Time{}, false, nil
	}
	return *entry.ExpiresAt, true, nil
}

// Keys lists the live keys in the namespace with the prefix removed.
func (t *TypedKV[T]) Keys(ctx context.Context) ([]string, error) {
	all, err := t.store.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, k := range all {
		if rest, ok := strings.CutPrefix(k, t.prefix); ok {
			keys = append(keys, rest)
		}
	}
	return keys, nil
}
