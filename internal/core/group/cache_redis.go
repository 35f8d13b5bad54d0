// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Francesca993/VanCommunity/internal/platform/constants"
)

// RedisSearchCache implements [SearchCache] on Redis.
//
// Keys have the form "<prefix><generation>:<criteria hash>". Invalidation
// increments the shared generation counter instead of deleting keys; stale
// entries simply expire through their TTL.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSearchCache constructs a search cache whose entries live for ttl.
func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{client: client, ttl: ttl}
}

// Key returns the cache key for criteria under the current catalog generation.
func (cache *RedisSearchCache) Key(ctx context.Context, criteria SearchCriteria) (string, error) {
	generation, err := cache.client.Get(ctx, constants.RedisKeyCatalogGeneration).Result()
	if errors.Is(err, redis.Nil) {
		generation = "0"
	} else if err != nil {
		return "", fmt.Errorf("search cache: read generation: %w", err)
	}

	return constants.RedisPrefixSearch + generation + ":" + criteriaHash(criteria), nil
}

// Get returns the cached groups for key, reporting false on a miss.
func (cache *RedisSearchCache) Get(ctx context.Context, key string) ([]*Group, bool, error) {
	payload, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("search cache: get: %w", err)
	}

	groups := []*Group{}
	if err := json.Unmarshal(payload, &groups); err != nil {
		return nil, false, fmt.Errorf("search cache: decode: %w", err)
	}
	return groups, true, nil
}

// Set stores groups under key with the configured TTL.
func (cache *RedisSearchCache) Set(ctx context.Context, key string, groups []*Group) error {
	payload, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("search cache: encode: %w", err)
	}

	if err := cache.client.Set(ctx, key, payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("search cache: set: %w", err)
	}
	return nil
}

// Invalidate starts a new catalog generation.
func (cache *RedisSearchCache) Invalidate(ctx context.Context) error {
	if err := cache.client.Incr(ctx, constants.RedisKeyCatalogGeneration).Err(); err != nil {
		return fmt.Errorf("search cache: bump generation: %w", err)
	}
	return nil
}

// criteriaHash fingerprints the fields that affect the search result.
// Styles are a set, so their order and duplicates do not change the hash.
// The fields are JSON encoded so no value can spill into its neighbour.
func criteriaHash(criteria SearchCriteria) string {
	styles := slices.Clone(criteria.Styles)
	slices.Sort(styles)
	styles = slices.Compact(styles)
	if styles == nil {
		styles = []string{}
	}

	fingerprint, _ := json.Marshal(struct {
		Age    int      `json:"age"`
		Date   string   `json:"date"`
		Styles []string `json:"styles"`
	}{criteria.Age, criteria.Date, styles})

	sum := sha256.Sum256(fingerprint)
	return hex.EncodeToString(sum[:])
}
