// Package redis caches fetched flow definitions, so long-running modes
// (serve, mcp) do not refetch a flow from the Studio API on every render.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/studiomap/internal/adapters/twilio"
	"github.com/aretw0/studiomap/internal/logging"
	"github.com/aretw0/studiomap/pkg/flow"
)

// Cache stores flow definitions in Redis, keyed by flow SID.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the expiration for cached definitions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached definitions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache backed by a new Redis client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: "studiomap:flow:",
		ttl:    15 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key(sid string) string {
	return c.prefix + sid
}

// Get returns the cached definition for sid, or nil on a miss.
func (c *Cache) Get(ctx context.Context, sid string) (*flow.Definition, error) {
	data, err := c.client.Get(ctx, c.key(sid)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", sid, err)
	}

	var def flow.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode cached flow %s: %w", sid, err)
	}
	return &def, nil
}

// Put stores a definition for sid with the configured TTL.
func (c *Cache) Put(ctx context.Context, sid string, def *flow.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode flow %s for cache: %w", sid, err)
	}
	if err := c.client.Set(ctx, c.key(sid), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put %s: %w", sid, err)
	}
	return nil
}

// CachedSource wraps a Source with the cache. Cache failures degrade to a
// direct fetch; they are logged, never surfaced.
type CachedSource struct {
	source twilio.Source
	cache  *Cache
	logger *slog.Logger
}

// NewCachedSource wraps source with cache.
func NewCachedSource(source twilio.Source, cache *Cache, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &CachedSource{source: source, cache: cache, logger: logger}
}

// FetchDefinition implements twilio.Source.
func (s *CachedSource) FetchDefinition(ctx context.Context, sid string) (*flow.Definition, error) {
	if def, err := s.cache.Get(ctx, sid); err != nil {
		s.logger.Warn("flow cache read failed", "sid", sid, "error", err)
	} else if def != nil {
		s.logger.Debug("flow cache hit", "sid", sid)
		return def, nil
	}

	def, err := s.source.FetchDefinition(ctx, sid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, sid, def); err != nil {
		s.logger.Warn("flow cache write failed", "sid", sid, "error", err)
	}
	return def, nil
}
