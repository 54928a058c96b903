package identity

import (
	"context"
	"sync"

	"github.com/atty-social/atty/atproto/syntax"
)

// A fake HandleResolver, for use in tests
type MockResolver struct {
	mu      sync.Mutex
	Handles map[syntax.Handle]syntax.DID
	// Number of ResolveHandle calls, including failed ones
	Calls int
}

var _ HandleResolver = (*MockResolver)(nil)

func NewMockResolver() *MockResolver {
	return &MockResolver{
		Handles: make(map[syntax.Handle]syntax.DID),
	}
}

func (r *MockResolver) Insert(h syntax.Handle, did syntax.DID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Handles[h.Normalize()] = did
}

func (r *MockResolver) ResolveHandle(ctx context.Context, h syntax.Handle) (syntax.DID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	did, ok := r.Handles[h.Normalize()]
	if !ok {
		return "", ErrHandleNotFound
	}
	return did, nil
}
