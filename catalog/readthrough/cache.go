package readthrough

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/facebookgo/clock"
	"golang.org/x/sync/singleflight"

	"encore.dev/rlog"
)

// Backend stores encoded cache entries. Implementations may expire entries on
// their own after ttl; validity is still decided by the Cache clock.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache is a read-through cache over a Backend.
//
// Concurrent misses for the same key within one process share a single
// computation. Processes sharing a remote backend may compute concurrently;
// the last write wins.
type Cache struct {
	name    string
	backend Backend
	clock   clock.Clock
	metrics *Metrics
	flights singleflight.Group
}

type Option func(*Cache)

// WithClock sets the clock used to stamp and check expiry
func WithClock(c clock.Clock) Option {
	return func(cache *Cache) {
		cache.clock = c
	}
}

// WithMetrics records lookups on m under the cache name
func WithMetrics(m *Metrics) Option {
	return func(cache *Cache) {
		cache.metrics = m
	}
}

// New creates a named cache over backend
func New(name string, backend Backend, opts ...Option) *Cache {
	c := &Cache{
		name:    name,
		backend: backend,
		clock:   clock.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// GetOrCompute returns the value stored under key if it has not expired.
// Otherwise it calls compute, stores the result for ttl and returns it.
//
// A ttl of zero or less disables caching: compute is called every time and
// nothing is stored. Errors from compute are returned as is and never cached.
// A key must always be used with the same T.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if ttl <= 0 {
		c.metrics.observe(c.name, resultBypass)
		return compute(ctx)
	}

	value, ok, err := lookup[T](ctx, c, key)
	if err != nil {
		c.metrics.observe(c.name, resultError)
		return zero, err
	}
	if ok {
		c.metrics.observe(c.name, resultHit)
		rlog.Debug("cache hit", "cache", c.name, "key", key)
		return value, nil
	}

	// followers share the leader's flight, so it must outlive the leader's request
	flightCtx := context.WithoutCancel(ctx)

	computed := false
	shared, err, _ := c.flights.Do(key, func() (any, error) {
		// a flight that finished between our lookup and Do may have stored it
		if value, ok, err := lookup[T](flightCtx, c, key); err != nil || ok {
			return value, err
		}

		computed = true
		c.metrics.observe(c.name, resultMiss)
		rlog.Debug("cache miss", "cache", c.name, "key", key)

		value, err := compute(flightCtx)
		if err != nil {
			return value, err
		}
		if err := store(flightCtx, c, key, value, ttl); err != nil {
			c.metrics.observe(c.name, resultError)
			return value, err
		}
		return value, nil
	})
	switch {
	case computed:
	case err != nil:
		c.metrics.observe(c.name, resultError)
	default:
		// served by another flight without computing
		c.metrics.observe(c.name, resultHit)
	}
	if err != nil {
		return zero, err
	}

	value, _ = shared.(T)
	return value, nil
}

func lookup[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var zero T

	raw, found, err := c.backend.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("cache %s: get %q: %w", c.name, key, err)
	}
	if !found {
		return zero, false, nil
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		rlog.Warn("discarding corrupt cache entry", "cache", c.name, "key", key, "error", err)
		return zero, false, nil
	}
	if !c.clock.Now().Before(e.ExpiresAt) {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal(e.Value, &value); err != nil {
		rlog.Warn("discarding undecodable cache value", "cache", c.name, "key", key, "error", err)
		return zero, false, nil
	}

	return value, true, nil
}

func store[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache %s: encode %q: %w", c.name, key, err)
	}

	raw, err := json.Marshal(entry{
		Value:     payload,
		ExpiresAt: c.clock.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("cache %s: encode %q: %w", c.name, key, err)
	}

	if err := c.backend.Set(ctx, key, raw, ttl); err != nil {
		return fmt.Errorf("cache %s: set %q: %w", c.name, key, err)
	}

	return nil
}
