// Package rediscache decorates a Catalog with a read-through Redis cache for
// field definitions.
//
// Field definitions are the hot lookup of the field layer: every keyed field
// in every payload resolves one, and definitions change rarely. The decorator
// caches positive lookups only, with a TTL plus explicit invalidation for the
// write path. Redis outages fail open to the underlying catalog; a cache is
// never allowed to turn a working lookup into an error.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"pulse/internal/fields"
	"pulse/internal/records/models"
	"pulse/internal/tenancy"
	id "pulse/pkg/domain"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_fielddef_cache_lookups_total",
		Help: "Field definition cache lookups by result (hit, miss, bypass)",
	}, []string{"result"})
)

const (
	keyPrefix  = "fielddef:"
	defaultTTL = 5 * time.Minute
)

// Catalog wraps an inner catalog, serving FieldByKey through Redis. All
// other lookups pass through to the embedded catalog untouched.
type Catalog struct {
	fields.Catalog

	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// Option configures the cache.
type Option func(*Catalog)

// WithTTL overrides the default cache entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Catalog) {
		c.ttl = ttl
	}
}

// WithLogger attaches a structured logger for fail-open warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New wraps inner with a Redis-backed field definition cache.
func New(inner fields.Catalog, client *redis.Client, opts ...Option) *Catalog {
	c := &Catalog{Catalog: inner, client: client, ttl: defaultTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func cacheKey(tenantID id.TenantID, key string) string {
	return keyPrefix + tenantID.String() + ":" + key
}

// FieldByKey serves the definition from Redis when possible, falling back to
// the inner catalog on miss or on any Redis fault. Concurrent misses for the
// same key collapse into a single source lookup.
func (c *Catalog) FieldByKey(ctx context.Context, scope tenancy.Scope, key string) (*models.FieldDef, error) {
	ck := cacheKey(scope.TenantID, key)

	payload, err := c.client.Get(ctx, ck).Bytes()
	if err == nil {
		var def models.FieldDef
		if unmarshalErr := json.Unmarshal(payload, &def); unmarshalErr == nil {
			cacheLookups.WithLabelValues("hit").Inc()
			return &def, nil
		}
		// Undecodable entry: drop it and fall through to the source.
		c.client.Del(ctx, ck)
	} else if !errors.Is(err, redis.Nil) {
		cacheLookups.WithLabelValues("bypass").Inc()
		c.warn(ctx, "field def cache unavailable, using source", "key", key, "error", err)
		return c.Catalog.FieldByKey(ctx, scope, key)
	}

	cacheLookups.WithLabelValues("miss").Inc()
	v, err, _ := c.group.Do(ck, func() (any, error) {
		def, err := c.Catalog.FieldByKey(ctx, scope, key)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(def); err == nil {
			if setErr := c.client.Set(ctx, ck, payload, c.ttl).Err(); setErr != nil {
				c.warn(ctx, "field def cache write failed", "key", key, "error", setErr)
			}
		}
		return def, nil
	})
	if err != nil {
		return nil, err
	}
	def, ok := v.(*models.FieldDef)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T", v)
	}
	return def, nil
}

// Invalidate drops the cached definition for one tenant key. The write path
// calls this after any field definition mutation.
func (c *Catalog) Invalidate(ctx context.Context, tenantID id.TenantID, key string) error {
	if err := c.client.Del(ctx, cacheKey(tenantID, key)).Err(); err != nil {
		return fmt.Errorf("invalidate field def cache: %w", err)
	}
	return nil
}

func (c *Catalog) warn(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.WarnContext(ctx, msg, args...)
	}
}
