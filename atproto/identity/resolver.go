package identity

import (
	"context"
	"errors"

	"github.com/atty-social/atty/atproto/syntax"
)

// Resolves a handle to the DID it currently points at. No bi-directional verification is done; the remote
// service is trusted.
type HandleResolver interface {
	ResolveHandle(ctx context.Context, handle syntax.Handle) (syntax.DID, error)
}

// Indicates that handle resolution failed. A wrapped error may provide more context.
var ErrHandleResolutionFailed = errors.New("handle resolution failed")

// Indicates that resolution process completed successfully, but handle does not exist.
var ErrHandleNotFound = errors.New("handle not found")

// Handle was invalid, in a situation where a valid handle is required.
var ErrInvalidHandle = errors.New("invalid handle")
