package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atty-social/atty/atproto/syntax"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockResolver(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	r := NewMockResolver()

	_, err := r.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.ErrorIs(err, ErrHandleNotFound)

	r.Insert(syntax.Handle("Alice.Example.com"), syntax.DID("did:plc:abc111"))
	did, err := r.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.NoError(err)
	assert.Equal(syntax.DID("did:plc:abc111"), did)
	assert.Equal(2, r.Calls)
}

func TestCacheResolver(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	inner := NewMockResolver()
	inner.Insert(syntax.Handle("alice.example.com"), syntax.DID("did:plc:abc111"))
	c := NewCacheResolver(inner, 100, time.Hour, time.Hour)

	for i := 0; i < 3; i++ {
		did, err := c.ResolveHandle(ctx, syntax.Handle("ALICE.example.com"))
		assert.NoError(err)
		assert.Equal(syntax.DID("did:plc:abc111"), did)
	}
	assert.Equal(1, inner.Calls)

	// errors are cached too, until ErrTTL
	for i := 0; i < 2; i++ {
		_, err := c.ResolveHandle(ctx, syntax.Handle("bob.example.com"))
		assert.ErrorIs(err, ErrHandleNotFound)
	}
	assert.Equal(2, inner.Calls)

	c.Purge(syntax.Handle("alice.example.com"))
	_, err := c.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.NoError(err)
	assert.Equal(3, inner.Calls)

	_, err = c.ResolveHandle(ctx, syntax.HandleInvalid)
	assert.ErrorIs(err, ErrInvalidHandle)
	assert.Equal(3, inner.Calls)
}

func TestCacheResolverErrTTL(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	inner := NewMockResolver()
	c := NewCacheResolver(inner, 100, time.Hour, time.Nanosecond)

	_, err := c.ResolveHandle(ctx, syntax.Handle("bob.example.com"))
	assert.ErrorIs(err, ErrHandleNotFound)
	time.Sleep(time.Millisecond)

	inner.Insert(syntax.Handle("bob.example.com"), syntax.DID("did:plc:bob"))
	did, err := c.ResolveHandle(ctx, syntax.Handle("bob.example.com"))
	assert.NoError(err)
	assert.Equal(syntax.DID("did:plc:bob"), did)
	assert.Equal(2, inner.Calls)
}

// times out on the first Fail calls, then behaves like the mock
type timeoutResolver struct {
	*MockResolver
	Fail int
}

func (r *timeoutResolver) ResolveHandle(ctx context.Context, h syntax.Handle) (syntax.DID, error) {
	if r.Fail > 0 {
		r.Fail--
		r.mu.Lock()
		r.Calls++
		r.mu.Unlock()
		return "", fmt.Errorf("resolving %s: %w", h, context.DeadlineExceeded)
	}
	return r.MockResolver.ResolveHandle(ctx, h)
}

func TestCacheResolverContextErrors(t *testing.T) {
	assert := assert.New(t)
	inner := &timeoutResolver{MockResolver: NewMockResolver(), Fail: 1}
	inner.Insert(syntax.Handle("alice.example.com"), syntax.DID("did:plc:abc111"))
	c := NewCacheResolver(inner, 100, time.Hour, time.Hour)

	// a caller whose context is already done gets its own error, and the handle is not looked up
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ResolveHandle(cctx, syntax.Handle("alice.example.com"))
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, inner.Calls)

	// a timeout from the inner resolver is returned but not cached, even with a long ErrTTL
	ctx := context.Background()
	_, err = c.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Equal(1, inner.Calls)

	did, err := c.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.NoError(err)
	assert.Equal(syntax.DID("did:plc:abc111"), did)
	assert.Equal(2, inner.Calls)

	_, err = c.ResolveHandle(ctx, syntax.Handle("alice.example.com"))
	assert.NoError(err)
	assert.Equal(2, inner.Calls)
}

func TestAPIResolver(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/xrpc/com.atproto.identity.resolveHandle", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("handle") {
		case "alice.example.com":
			json.NewEncoder(w).Encode(map[string]string{"did": "did:plc:abc111"})
		case "broken.example.com":
			json.NewEncoder(w).Encode(map[string]string{"did": "not-a-did"})
		case "down.example.com":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "InternalServerError", "message": "oops"})
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "InvalidRequest", "message": "Unable to resolve handle"})
		}
	}))
	defer srv.Close()

	r := NewAPIResolver(srv.URL)
	before := testutil.ToFloat64(handleResolution.WithLabelValues("api", "success"))

	did, err := r.ResolveHandle(ctx, syntax.Handle("Alice.Example.com"))
	require.NoError(err)
	assert.Equal(syntax.DID("did:plc:abc111"), did)
	assert.Equal(before+1, testutil.ToFloat64(handleResolution.WithLabelValues("api", "success")))

	_, err = r.ResolveHandle(ctx, syntax.Handle("nobody.example.com"))
	assert.ErrorIs(err, ErrHandleNotFound)

	_, err = r.ResolveHandle(ctx, syntax.Handle("down.example.com"))
	assert.ErrorIs(err, ErrHandleResolutionFailed)
	assert.False(errors.Is(err, ErrHandleNotFound))

	_, err = r.ResolveHandle(ctx, syntax.Handle("broken.example.com"))
	assert.ErrorIs(err, ErrHandleResolutionFailed)
}
