package mem

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RedisCache stores JSON-encoded values in Redis so every API instance shares them.
// Redis failures degrade to cache misses.
type RedisCache[V any] struct {
	client *redis.Client
	prefix string
}

func NewRedisCache[V any](client *redis.Client, prefix string) *RedisCache[V] {
	return &RedisCache[V]{client: client, prefix: prefix}
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("key", r.prefix+key).Warn("redis cache read failed")
		}
		return zero, false
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		logrus.WithError(err).WithField("key", r.prefix+key).Warn("redis cache entry is not decodable")
		return zero, false
	}
	return v, true
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warn("redis cache encode failed")
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", r.prefix+key).Warn("redis cache write failed")
	}
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		logrus.WithError(err).WithField("key", r.prefix+key).Warn("redis cache delete failed")
	}
}
