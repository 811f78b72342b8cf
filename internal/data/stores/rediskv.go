package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/colonyops/campus/internal/core/kv"
)

// DefaultRedisPrefix namespaces every key written by RedisKV.
const DefaultRedisPrefix = "campus:kv:"

const (
	fieldValue     = "value"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// RedisKV implements kv.KV on top of Redis. Each entry is a hash holding the
// JSON value and its timestamps; expiry uses native key TTLs so no sweeping
// is needed.
type RedisKV struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

var _ kv.KV = (*RedisKV)(nil)

// NewRedisKV creates a KV backed by client. An empty prefix uses
// DefaultRedisPrefix.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisKV{client: client, prefix: prefix, now: time.Now}
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}

// Get retrieves and deserializes a value by key.
// Returns an error wrapping sql.ErrNoRows if the key does not exist.
func (r *RedisKV) Get(ctx context.Context, key string, dest any) error {
	value, err := r.client.HGet(ctx, r.prefix+key, fieldValue).Bytes()
	if err != nil {
		return fmt.Errorf("kv get %q: %w", key, notFound(err))
	}

	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("kv get %q unmarshal: %w", key, err)
	}

	return nil
}

// Set stores a value with no expiry.
func (r *RedisKV) Set(ctx context.Context, key string, value any) error {
	return r.set(ctx, key, value, 0)
}

// SetTTL stores a value that expires after the given duration. A
// non-positive ttl deletes the key.
func (r *RedisKV) SetTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return r.Delete(ctx, key)
	}
	return r.set(ctx, key, value, ttl)
}

// Delete removes a key.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Has returns whether a key exists.
func (r *RedisKV) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("kv has %q: %w", key, err)
	}
	return n > 0, nil
}

// ListKeys returns all keys under the prefix in sorted order.
func (r *RedisKV) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("kv list keys: %w", err)
	}

	slices.Sort(keys)
	return keys, nil
}

// GetRaw retrieves a raw KV entry with metadata.
// Returns an error wrapping sql.ErrNoRows if the key does not exist.
func (r *RedisKV) GetRaw(ctx context.Context, key string) (kv.Entry, error) {
	var (
		fields *redis.MapStringStringCmd
		ttl    *redis.DurationCmd
	)

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		fields = pipe.HGetAll(ctx, r.prefix+key)
		ttl = pipe.PTTL(ctx, r.prefix+key)
		return nil
	})
	if err != nil {
		return kv.Entry{}, fmt.Errorf("kv get raw %q: %w", key, err)
	}

	m := fields.Val()
	if len(m) == 0 {
		return kv.Entry{}, fmt.Errorf("kv get raw %q: %w", key, sql.ErrNoRows)
	}

	entry := kv.Entry{
		Key:       key,
		Value:     json.RawMessage(m[fieldValue]),
		CreatedAt: parseUnixNano(m[fieldCreatedAt]),
		UpdatedAt: parseUnixNano(m[fieldUpdatedAt]),
	}

	if d := ttl.Val(); d > 0 {
		t := r.now().Add(d)
		entry.ExpiresAt = &t
	}

	return entry, nil
}

func (r *RedisKV) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q marshal: %w", key, err)
	}

	k := r.prefix + key
	now := strconv.FormatInt(r.now().UnixNano(), 10)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, k, fieldCreatedAt, now)
		pipe.HSet(ctx, k, fieldValue, data, fieldUpdatedAt, now)
		if ttl > 0 {
			pipe.PExpire(ctx, k, ttl)
		} else {
			pipe.Persist(ctx, k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}

	return nil
}

// notFound maps redis.Nil onto the KV contract's missing-key error.
func notFound(err error) error {
	if errors.Is(err, redis.Nil) {
		return sql.ErrNoRows
	}
	return err
}

func parseUnixNano(s string) time.Time {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(0, n)
}
