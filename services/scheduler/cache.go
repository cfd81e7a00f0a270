package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"slotwise/models"
)

// AvailabilityCache memoizes read-path results in Redis with a short
// TTL. Keys embed a per-event version counter, so invalidation is a
// single INCR instead of a pattern scan: stale entries simply stop
// being addressed and age out. A cache miss or Redis hiccup falls back
// to computing; the cache never turns into an error.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache wraps a Redis client with the configured TTL.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// version reads the event's invalidation counter. A missing key is a
// genuine version zero; any other read error reports not-ok so the
// caller skips the cache entirely, since guessing "0" could re-address
// entries written before an Invalidate that the error hid.
func (c *AvailabilityCache) version(ctx context.Context, eventID string) (string, bool) {
	v, err := c.client.Get(ctx, "avail:ver:"+eventID).Result()
	if err == redis.Nil {
		return "0", true
	}
	if err != nil {
		return "", false
	}
	return v, true
}

// Invalidate bumps the event's cache version after a booking is created
// or cancelled.
func (c *AvailabilityCache) Invalidate(ctx context.Context, eventID string) {
	c.client.Incr(ctx, "avail:ver:"+eventID)
}

func (c *AvailabilityCache) overviewKey(ctx context.Context, eventID, startDate, endDate string, limit int) (string, bool) {
	ver, ok := c.version(ctx, eventID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("avail:overview:%s:%s:%s:%s:%d", ver, eventID, startDate, endDate, limit), true
}

func (c *AvailabilityCache) slotsKey(ctx context.Context, eventID, date string) (string, bool) {
	ver, ok := c.version(ctx, eventID)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("avail:slots:%s:%s:%s", ver, eventID, date), true
}

// GetOverview returns a cached overview result, if present.
func (c *AvailabilityCache) GetOverview(ctx context.Context, eventID, startDate, endDate string, limit int) ([]string, bool) {
	key, ok := c.overviewKey(ctx, eventID, startDate, endDate, limit)
	if !ok {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(data), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

// SetOverview caches an overview result for the TTL.
func (c *AvailabilityCache) SetOverview(ctx context.Context, eventID, startDate, endDate string, limit int, dates []string) {
	key, ok := c.overviewKey(ctx, eventID, startDate, endDate, limit)
	if !ok {
		return
	}
	data, err := json.Marshal(dates)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

// GetSlots returns a cached per-date slot list, if present.
func (c *AvailabilityCache) GetSlots(ctx context.Context, eventID, date string) ([]models.AvailableSlot, bool) {
	key, ok := c.slotsKey(ctx, eventID, date)
	if !ok {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.AvailableSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetSlots caches a per-date slot list for the TTL.
func (c *AvailabilityCache) SetSlots(ctx context.Context, eventID, date string, slots []models.AvailableSlot) {
	key, ok := c.slotsKey(ctx, eventID, date)
	if !ok {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}
