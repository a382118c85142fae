package dedup

import (
	"context"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Cache suppresses redelivered webhook events for a short window, keyed by the
// inbound message or action id. Redis-backed when a client is provided, an
// in-memory TTL map otherwise. Fail-open: a Redis error never blocks handling.
type Cache struct {
	ttl time.Duration
	rdb *redis.Client

	mu   sync.Mutex
	seen map[string]time.Time
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		ttl:  ttl,
		rdb:  rdb,
		seen: make(map[string]time.Time),
	}
}

// Seen records the event id and reports whether it was already recorded within
// the TTL window.
func (c *Cache) Seen(ctx context.Context, eventID string) bool {
	if c == nil || eventID == "" {
		return false
	}

	if c.rdb != nil {
		fresh, err := c.rdb.SetNX(ctx, "dedup:"+eventID, 1, c.ttl).Result()
		if err == nil {
			return !fresh
		}
		// fall through to the in-memory map on Redis errors
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if expiry, ok := c.seen[eventID]; ok && now.Before(expiry) {
		return true
	}
	if len(c.seen) > 4096 {
		for id, expiry := range c.seen {
			if now.After(expiry) {
				delete(c.seen, id)
			}
		}
	}
	c.seen[eventID] = now.Add(c.ttl)
	return false
}
