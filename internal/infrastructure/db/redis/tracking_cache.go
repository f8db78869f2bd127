package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

const (
	defaultTrackingTTL = 15 * time.Minute
	trackingKeyPrefix  = "tracking:"
)

// TrackingCache stores successful tracking replies in Redis.
// Key format: tracking:<env>:<identifier_type>:<identifier>
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a TrackingCache wrapping the given Redis client.
// Entries expire after ttl, or defaultTrackingTTL when ttl <= 0.
func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = defaultTrackingTTL
	}
	return &TrackingCache{client: client, ttl: ttl}
}

// cachedTracking keeps the raw document, which TrackingResponse hides from JSON.
type cachedTracking struct {
	domain.TrackingResponse
	XML string `json:"xml"`
}

// Get returns the cached reply for key. A missing entry is not an error.
func (c *TrackingCache) Get(ctx context.Context, key string) (*domain.TrackingResponse, bool, error) {
	b, err := c.client.Get(ctx, trackingKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("tracking cache get: %w", err)
	}
	resp, err := decodeTracking(b)
	if err != nil {
		return nil, false, fmt.Errorf("tracking cache get: %w", err)
	}
	return resp, true, nil
}

// Set stores resp under key (expires after the configured TTL).
func (c *TrackingCache) Set(ctx context.Context, key string, resp *domain.TrackingResponse) error {
	b, err := encodeTracking(resp)
	if err != nil {
		return fmt.Errorf("tracking cache set: %w", err)
	}
	return c.client.Set(ctx, trackingKeyPrefix+key, b, c.ttl).Err()
}

func encodeTracking(resp *domain.TrackingResponse) ([]byte, error) {
	return json.Marshal(cachedTracking{TrackingResponse: *resp, XML: resp.XML})
}

func decodeTracking(b []byte) (*domain.TrackingResponse, error) {
	var cached cachedTracking
	if err := json.Unmarshal(b, &cached); err != nil {
		return nil, err
	}
	resp := cached.TrackingResponse
	resp.XML = cached.XML
	return &resp, nil
}
