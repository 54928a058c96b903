package redisdir

import (
	"context"
	"testing"
	"time"

	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisResolver(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()
	s := miniredis.RunT(t)

	inner := identity.NewMockResolver()
	inner.Insert(syntax.Handle("alice.example.com"), syntax.DID("did:plc:abc111"))

	d, err := NewRedisResolver(inner, "redis://"+s.Addr(), time.Hour, time.Hour, 100)
	require.NoError(err)

	for i := 0; i < 3; i++ {
		did, err := d.ResolveHandle(ctx, syntax.Handle("Alice.example.com"))
		require.NoError(err)
		assert.Equal(syntax.DID("did:plc:abc111"), did)
	}
	assert.Equal(1, inner.Calls)
	assert.True(s.Exists("handle/alice.example.com"))

	_, err = d.ResolveHandle(ctx, syntax.Handle("nobody.example.com"))
	assert.ErrorIs(err, identity.ErrHandleNotFound)
	_, err = d.ResolveHandle(ctx, syntax.Handle("nobody.example.com"))
	assert.ErrorIs(err, identity.ErrHandleNotFound)
	assert.Equal(2, inner.Calls)

	_, err = d.ResolveHandle(ctx, syntax.HandleInvalid)
	assert.ErrorIs(err, identity.ErrInvalidHandle)
}

func TestRedisResolverShared(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()
	s := miniredis.RunT(t)

	first := identity.NewMockResolver()
	first.Insert(syntax.Handle("alice.example.com"), syntax.DID("did:plc:abc111"))
	second := identity.NewMockResolver()

	d1, err := NewRedisResolver(first, "redis://"+s.Addr(), time.Hour, time.Hour, 100)
	require.NoError(err)
	d2, err := NewRedisResolver(second, "redis://"+s.Addr(), time.Hour, time.Hour, 100)
	require.NoError(err)

	_, err = d1.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	require.NoError(err)

	hits := testutil.ToFloat64(handleCacheHits)
	did, err := d2.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	require.NoError(err)
	assert.Equal(syntax.DID("did:plc:abc111"), did)
	assert.Equal(0, second.Calls)
	assert.Equal(hits+1, testutil.ToFloat64(handleCacheHits))

	require.NoError(d1.Purge(ctx, syntax.Handle("alice.example.com")))
	assert.False(s.Exists("handle/alice.example.com"))
}

func TestRedisResolverBadURL(t *testing.T) {
	_, err := NewRedisResolver(identity.NewMockResolver(), "not a url", time.Hour, time.Hour, 10)
	assert.Error(t, err)
}
