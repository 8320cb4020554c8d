package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBlacklist_InMemory(t *testing.T) {
	b := NewTokenBlacklist(nil)
	ctx := context.Background()

	require.NoError(t, b.Add(ctx, "live", time.Now().Add(time.Minute)))
	require.NoError(t, b.Add(ctx, "stale", time.Now().Add(-time.Minute)))

	assert.True(t, b.Contains(ctx, "live"))
	assert.False(t, b.Contains(ctx, "stale"))
	assert.False(t, b.Contains(ctx, "unknown"))
}

func TestTokenBlacklist_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	b := NewTokenBlacklist(rc)
	ctx := context.Background()
	require.NoError(t, b.Add(ctx, "tok", time.Now().Add(time.Minute)))

	assert.True(t, mr.Exists(blacklistKeyPrefix+"tok"))
	assert.True(t, b.Contains(ctx, "tok"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, b.Contains(ctx, "tok"))
}

func TestTokenBlacklist_RedisDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rc.Close() })
	mr.Close()

	b := NewTokenBlacklist(rc)
	assert.False(t, b.Contains(context.Background(), "tok"))
	assert.Error(t, b.Add(context.Background(), "tok", time.Now().Add(time.Minute)))
}
