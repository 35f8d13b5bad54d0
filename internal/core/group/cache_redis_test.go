// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francesca993/VanCommunity/internal/platform/constants"
)

/*
TestCriteriaHash treats styles as a set and ignores has_van.
*/
func TestCriteriaHash(t *testing.T) {
	base := criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20", Styles: []string{"Lago", "Natura"}})

	assert.Equal(t, base, criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20", Styles: []string{"Natura", "Lago", "Lago"}}))
	assert.Equal(t, base, criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20", Styles: []string{"Lago", "Natura"}, HasVan: true}))

	assert.NotEqual(t, base, criteriaHash(SearchCriteria{Age: 31, Date: "2025-05-20", Styles: []string{"Lago", "Natura"}}))
	assert.NotEqual(t, base, criteriaHash(SearchCriteria{Age: 30, Styles: []string{"Lago", "Natura"}}))
	assert.NotEqual(t, base, criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20", Styles: []string{"Lago"}}))

	// Separator bytes inside a value must not shift it into the next field.
	assert.NotEqual(t,
		criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20", Styles: []string{"Lago"}}),
		criteriaHash(SearchCriteria{Age: 30, Date: "2025-05-20\x00Lago"}),
	)
	assert.NotEqual(t,
		criteriaHash(SearchCriteria{Age: 30, Styles: []string{"Lago\x00Mare"}}),
		criteriaHash(SearchCriteria{Age: 30, Styles: []string{"Lago", "Mare"}}),
	)
}

/*
TestClone copies the styles slice.
*/
func TestClone(t *testing.T) {
	original := &Group{ID: "1", Styles: []string{"Lago"}}
	copied := original.clone()
	copied.Styles[0] = "Mare"

	assert.Equal(t, "Lago", original.Styles[0])
	assert.Equal(t, []string{}, (&Group{}).clone().Styles)
}

// newTestRedis connects to REDIS_TEST_URL and empties that database.
// The URL must point to a disposable database.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	redisURL := os.Getenv("REDIS_TEST_URL")
	if redisURL == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	options, err := redis.ParseURL(redisURL)
	require.NoError(t, err)

	client := redis.NewClient(options)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.FlushDB(context.Background()).Err())
	return client
}

/*
TestRedisSearchCache_RoundTrip stores results under the current generation with a TTL.
*/
func TestRedisSearchCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t)
	cache := NewRedisSearchCache(client, time.Minute)
	criteria := SearchCriteria{Age: 30, Styles: []string{"Lago"}}

	// No generation key yet: generation 0.
	key, err := cache.Key(ctx, criteria)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, constants.RedisPrefixSearch+"0:"))

	_, hit, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)

	stored := []*Group{{ID: "1", Name: "Lago di Braies Weekend", Styles: []string{"Lago"}, SpotsFree: 3}}
	require.NoError(t, cache.Set(ctx, key, stored))

	groups, hit, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, stored, groups)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

/*
TestRedisSearchCache_Invalidate moves searches to a new generation.
*/
func TestRedisSearchCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisSearchCache(newTestRedis(t), time.Minute)
	criteria := SearchCriteria{Age: 30}

	before, err := cache.Key(ctx, criteria)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, before, []*Group{{ID: "1", Styles: []string{}}}))

	require.NoError(t, cache.Invalidate(ctx))

	after, err := cache.Key(ctx, criteria)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.True(t, strings.HasPrefix(after, constants.RedisPrefixSearch+"1:"))

	_, hit, err := cache.Get(ctx, after)
	require.NoError(t, err)
	assert.False(t, hit)
}

/*
TestRedisSearchCache_CorruptEntry reports undecodable payloads as errors.
*/
func TestRedisSearchCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t)
	cache := NewRedisSearchCache(client, time.Minute)

	key, err := cache.Key(ctx, SearchCriteria{Age: 30})
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, key, "not json", time.Minute).Err())

	_, hit, err := cache.Get(ctx, key)
	assert.Error(t, err)
	assert.False(t, hit)
}
