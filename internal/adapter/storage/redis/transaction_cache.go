package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TransactionCache implements ports.TransactionCache using Redis.
// Completed transactions are cached by reference so hot lookups skip
// the database. The database stays authoritative.
type TransactionCache struct {
	client *goredis.Client
	prefix string
}

// NewTransactionCache creates a new Redis-backed transaction cache.
func NewTransactionCache(client *goredis.Client) *TransactionCache {
	return &TransactionCache{
		client: client,
		prefix: "txn:",
	}
}

// Get retrieves a cached transaction by reference.
// Returns nil, nil if the reference is not cached.
func (c *TransactionCache) Get(ctx context.Context, reference string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+reference).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis transaction get: %w", err)
	}
	return val, nil
}

// Set stores a transaction in the cache with TTL.
func (c *TransactionCache) Set(ctx context.Context, reference string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+reference, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis transaction set: %w", err)
	}
	return nil
}
