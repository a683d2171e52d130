package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/auralabs/aura-backend/internal/models"
)

const (
	// PlanCacheKeyPrefix is the Redis key prefix for cached generated plans
	PlanCacheKeyPrefix = "plan:"
	// DefaultPlanTTL is 8 hours; plans are day-scoped content
	DefaultPlanTTL = 8 * time.Hour
	// MinPlanTTL is 6 hours
	MinPlanTTL = 6 * time.Hour
	// MaxPlanTTL is 12 hours
	MaxPlanTTL = 12 * time.Hour
)

// PlanCache caches generated diet/workout plans per user so repeat visits
// within the same day don't re-bill the model. A nil client disables
// caching (every Get is a miss).
type PlanCache struct {
	client *redis.Client
}

func NewPlanCache(client *redis.Client) *PlanCache {
	return &PlanCache{client: client}
}

// Key builds the cache key from the email, the plan kind and the vibe that
// flavored the generation, since a changed vibe changes the plan.
func (c *PlanCache) Key(email, kind string, vibe *models.DailyVibe) string {
	fingerprint := "none"
	if vibe != nil {
		fingerprint = fmt.Sprintf("%s-%s-%s", vibe.Sleep, vibe.Energy, vibe.Mood)
	}
	return email + ":" + kind + ":" + fingerprint
}

// Get retrieves a cached plan into dest; a miss is not an error.
func (c *PlanCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, PlanCacheKeyPrefix+key).Result()
	if err != nil {
		return false, nil // Cache miss, not an error
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a plan with the default TTL.
func (c *PlanCache) Set(ctx context.Context, key string, value interface{}) error {
	return c.SetWithTTL(ctx, key, value, DefaultPlanTTL)
}

// SetWithTTL stores a plan with a custom TTL (clamped to 6-12 hours).
func (c *PlanCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	if ttl < MinPlanTTL {
		ttl = MinPlanTTL
	}
	if ttl > MaxPlanTTL {
		ttl = MaxPlanTTL
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, PlanCacheKeyPrefix+key, jsonData, ttl).Err()
}

// Delete removes a cached plan (used by the force flag).
func (c *PlanCache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, PlanCacheKeyPrefix+key).Err()
}
