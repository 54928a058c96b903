package redisdir

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// prefix string for all the Redis keys this cache uses
var redisDirPrefix string = "handle/"

// Uses redis as a shared cache for handle resolution, so several CLI invocations (or processes) do not each ask
// the network.
//
// Includes an in-process LRU cache as well (provided by the redis client library), for hot keys.
type RedisResolver struct {
	Inner  identity.HandleResolver
	ErrTTL time.Duration
	HitTTL time.Duration

	handleCache *cache.Cache
	group       singleflight.Group
}

// Cached errors can not round-trip through the cache encoding, so only their kind and message are kept.
type handleEntry struct {
	Updated  time.Time
	DID      syntax.DID
	NotFound bool
	ErrMsg   string
}

func (e *handleEntry) result() (syntax.DID, error) {
	if e.NotFound {
		return "", identity.ErrHandleNotFound
	}
	if e.ErrMsg != "" {
		return "", fmt.Errorf("%w: %s", identity.ErrHandleResolutionFailed, e.ErrMsg)
	}
	if e.DID == "" {
		return "", errors.New("empty handle cache entry")
	}
	return e.DID, nil
}

var _ identity.HandleResolver = (*RedisResolver)(nil)

// Creates a new caching `identity.HandleResolver` wrapper around an existing resolver, using Redis and
// in-process LRU for caching.
//
// `redisURL` contains all the redis connection config options.
// `hitTTL` and `errTTL` define how long successful and errored resolutions should be cached (respectively).
// `lruSize` is the size of the in-process cache. 10000 is a reasonable default.
func NewRedisResolver(inner identity.HandleResolver, redisURL string, hitTTL, errTTL time.Duration, lruSize int) (*RedisResolver, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("could not configure redis handle cache: %w", err)
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis handle cache: %w", err)
	}
	handleCache := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(lruSize, hitTTL),
	})
	return &RedisResolver{
		Inner:       inner,
		ErrTTL:      errTTL,
		HitTTL:      hitTTL,
		handleCache: handleCache,
	}, nil
}

func (d *RedisResolver) isStale(e *handleEntry) bool {
	if (e.NotFound || e.ErrMsg != "") && time.Since(e.Updated) > d.ErrTTL {
		return true
	}
	return false
}

func (d *RedisResolver) updateHandle(ctx context.Context, h syntax.Handle) handleEntry {
	did, err := d.Inner.ResolveHandle(ctx, h)
	he := handleEntry{
		Updated: time.Now(),
		DID:     did,
	}
	ttl := d.HitTTL
	if err != nil {
		he.DID = ""
		he.NotFound = errors.Is(err, identity.ErrHandleNotFound)
		he.ErrMsg = err.Error()
		ttl = d.ErrTTL
	}

	// a context error belongs to this caller, not to the handle
	if ctx.Err() != nil {
		return he
	}
	err = d.handleCache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   redisDirPrefix + h.String(),
		Value: he,
		TTL:   ttl,
	})
	if err != nil {
		slog.Error("handle cache write failed", "handle", h, "err", err)
	}
	return he
}

func (d *RedisResolver) ResolveHandle(ctx context.Context, h syntax.Handle) (syntax.DID, error) {
	if h.IsInvalidHandle() {
		return "", fmt.Errorf("can not resolve handle: %w", identity.ErrInvalidHandle)
	}
	h = h.Normalize()

	var entry handleEntry
	err := d.handleCache.Get(ctx, redisDirPrefix+h.String(), &entry)
	if err != nil && err != cache.ErrCacheMiss {
		return "", fmt.Errorf("handle cache read failed: %w", err)
	}
	if err == nil && !d.isStale(&entry) {
		handleCacheHits.Inc()
		return entry.result()
	}
	handleCacheMisses.Inc()

	ch := d.group.DoChan(h.String(), func() (any, error) {
		return d.updateHandle(ctx, h), nil
	})
	select {
	case res := <-ch:
		if res.Shared {
			handleRequestsCoalesced.Inc()
		}
		he := res.Val.(handleEntry)
		return he.result()
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Flushes any cached result for the handle, both locally and in redis.
func (d *RedisResolver) Purge(ctx context.Context, h syntax.Handle) error {
	err := d.handleCache.Delete(ctx, redisDirPrefix+h.Normalize().String())
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}
