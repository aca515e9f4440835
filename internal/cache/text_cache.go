package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// TextCache stores extracted page text keyed by a file fingerprint.
// It is a pure optimization in front of the extractor: the scanner
// works identically, just slower, when every lookup misses.
type TextCache interface {
	GetPages(ctx context.Context, key string) ([]string, bool, error)
	SetPages(ctx context.Context, key string, pages []string) error
}

// Fingerprint derives the cache key for one file from its path, size
// and modification time, so any content change invalidates the entry.
func Fingerprint(path string, size int64, modified time.Time) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%d", path, size, modified.UnixNano()))
	return hex.EncodeToString(sum[:])
}

type RedisTextCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRedisTextCache(client *redisv9.Client, ttl time.Duration) *RedisTextCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisTextCache{client: client, ttl: ttl}
}

func (c *RedisTextCache) GetPages(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, c.redisKey(key)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get pages failed: %w", err)
	}

	var pages []string
	if err := json.Unmarshal([]byte(raw), &pages); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached pages failed: %w", err)
	}
	return pages, true, nil
}

func (c *RedisTextCache) SetPages(ctx context.Context, key string, pages []string) error {
	payload, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("marshal pages cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.redisKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set pages failed: %w", err)
	}
	return nil
}

func (c *RedisTextCache) redisKey(key string) string {
	return "pdf:text:" + key
}

// NoopTextCache is used when the cache is disabled in config.
type NoopTextCache struct{}

func (NoopTextCache) GetPages(context.Context, string) ([]string, bool, error) {
	return nil, false, nil
}

func (NoopTextCache) SetPages(context.Context, string, []string) error {
	return nil
}
