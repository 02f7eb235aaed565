package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/studiomap/internal/adapters/redis"
	"github.com/aretw0/studiomap/pkg/flow"
)

func newCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func testDefinition() *flow.Definition {
	return &flow.Definition{
		States: []flow.StateRecord{
			{Name: "Trigger", Type: "trigger", Transitions: []flow.TransitionRecord{
				{Event: "incomingCall", Next: "greet"},
			}},
			{Name: "greet", Type: "say-play"},
		},
	}
}

func TestCache_PutGet(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "FW123", testDefinition()))

	got, err := cache.Get(ctx, "FW123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.States, 2)
	assert.Equal(t, "greet", got.States[1].Name)
}

func TestCache_MissReturnsNil(t *testing.T) {
	cache, _ := newCache(t)
	got, err := cache.Get(context.Background(), "FWnope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := newCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "FW123", testDefinition()))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "FW123")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// countingSource records fetches to observe cache behavior.
type countingSource struct {
	calls int
}

func (s *countingSource) FetchDefinition(ctx context.Context, sid string) (*flow.Definition, error) {
	s.calls++
	return testDefinition(), nil
}

func TestCachedSource_FetchesOnce(t *testing.T) {
	cache, _ := newCache(t)
	upstream := &countingSource{}
	src := redis.NewCachedSource(upstream, cache, nil)
	ctx := context.Background()

	first, err := src.FetchDefinition(ctx, "FW123")
	require.NoError(t, err)
	second, err := src.FetchDefinition(ctx, "FW123")
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.calls)
	assert.Equal(t, first.States, second.States)
}
