package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atty-social/atty/atproto/syntax"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// In-process caching wrapper around another HandleResolver. Concurrent lookups of the same handle are coalesced
// into a single call to Inner.
type CacheResolver struct {
	Inner  HandleResolver
	ErrTTL time.Duration

	handleCache *expirable.LRU[syntax.Handle, HandleEntry]
	group       singleflight.Group
}

type HandleEntry struct {
	Updated time.Time
	DID     syntax.DID
	Err     error
}

var _ HandleResolver = (*CacheResolver)(nil)

// Capacity of zero means unlimited size. Similarly, ttl of zero means unlimited duration.
func NewCacheResolver(inner HandleResolver, capacity int, hitTTL, errTTL time.Duration) *CacheResolver {
	return &CacheResolver{
		Inner:       inner,
		ErrTTL:      errTTL,
		handleCache: expirable.NewLRU[syntax.Handle, HandleEntry](capacity, nil, hitTTL),
	}
}

func (r *CacheResolver) isStale(e *HandleEntry) bool {
	return e.Err != nil && time.Since(e.Updated) > r.ErrTTL
}

func (r *CacheResolver) ResolveHandle(ctx context.Context, h syntax.Handle) (syntax.DID, error) {
	if h.IsInvalidHandle() {
		return "", fmt.Errorf("can not resolve handle: %w", ErrInvalidHandle)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h = h.Normalize()

	entry, ok := r.handleCache.Get(h)
	if ok && !r.isStale(&entry) {
		handleCacheHits.Inc()
		return entry.DID, entry.Err
	}
	handleCacheMisses.Inc()

	ch := r.group.DoChan(h.String(), func() (any, error) {
		did, err := r.Inner.ResolveHandle(ctx, h)
		e := HandleEntry{
			Updated: time.Now(),
			DID:     did,
			Err:     err,
		}
		// a context error belongs to the caller, not to the handle
		if ctx.Err() == nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			r.handleCache.Add(h, e)
		}
		return e, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			handleRequestsCoalesced.Inc()
		}
		e := res.Val.(HandleEntry)
		return e.DID, e.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Flushes any cached result for the handle.
func (r *CacheResolver) Purge(h syntax.Handle) {
	r.handleCache.Remove(h.Normalize())
}
