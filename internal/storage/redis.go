package storage

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "page:"

// PageCache stores rendered responses. Every write gets its own expiry of
// TTL plus a uniform random share of Jitter so that entries written together
// do not expire together.
type PageCache struct {
	Client *redis.Client
	TTL    time.Duration
	Jitter time.Duration
}

func NewPageCache(client *redis.Client, ttl, jitter time.Duration) *PageCache {
	return &PageCache{Client: client, TTL: ttl, Jitter: jitter}
}

func (c *PageCache) Key(method, path, rawQuery string) string {
	key := pageKeyPrefix + method + ":" + path
	if rawQuery != "" {
		key += "?" + rawQuery
	}
	return key
}

// Expiry draws a TTL in [TTL, TTL+Jitter].
func (c *PageCache) Expiry() time.Duration {
	if c.Jitter <= 0 {
		return c.TTL
	}
	return c.TTL + time.Duration(rand.Int63n(int64(c.Jitter)+1))
}

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *PageCache) Set(ctx context.Context, key string, value []byte) error {
	return c.Client.Set(ctx, key, value, c.Expiry()).Err()
}

// InvalidateAll removes every cached page and reports how many were dropped.
func (c *PageCache) InvalidateAll(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.Client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			return removed, err
		}
		if len(keys) > 0 {
			n, err := c.Client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, err
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
