package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTransactionCache(client)
	ctx := context.Background()

	ref := "TXN1A2B3C4D"
	value := []byte(`{"reference_number":"TXN1A2B3C4D","status":"completed"}`)

	// Get before set => nil
	result, err := cache.Get(ctx, ref)
	assert.NoError(t, err)
	assert.Nil(t, result)

	// Set
	err = cache.Set(ctx, ref, value, 24*time.Hour)
	require.NoError(t, err)

	// Get after set
	result, err = cache.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestTransactionCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewTransactionCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "TOPAABBCCDD", []byte(`{"status":"completed"}`), 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "TOPAABBCCDD")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestHealthCheck_Ping(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	hc := NewHealthCheck(client)

	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "redis", hc.Name())

	s.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
