package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/atproto/syntax"
	"github.com/atty-social/atty/xrpc"
)

// Resolves handles by asking an atproto service (PDS or AppView) with com.atproto.identity.resolveHandle.
type APIResolver struct {
	Client *xrpc.Client
}

var _ HandleResolver = (*APIResolver)(nil)

// host includes schema, hostname, and port, but no path or trailing slash. Eg: "https://bsky.social"
func NewAPIResolver(host string) *APIResolver {
	return &APIResolver{
		Client: &xrpc.Client{Host: host},
	}
}

func (r *APIResolver) ResolveHandle(ctx context.Context, handle syntax.Handle) (syntax.DID, error) {
	start := time.Now()
	did, err := r.resolveHandle(ctx, handle)
	status := "success"
	if errors.Is(err, ErrHandleNotFound) {
		status = "not-found"
	} else if err != nil {
		status = "error"
	}
	handleResolution.WithLabelValues("api", status).Inc()
	handleResolutionDuration.WithLabelValues("api", status).Observe(time.Since(start).Seconds())
	return did, err
}

func (r *APIResolver) resolveHandle(ctx context.Context, handle syntax.Handle) (syntax.DID, error) {
	if handle.IsInvalidHandle() {
		return "", fmt.Errorf("can not resolve handle: %w", ErrInvalidHandle)
	}

	out, err := comatproto.IdentityResolveHandle(ctx, r.Client, handle.Normalize().String())
	if err != nil {
		var xe *xrpc.Error
		// services answer an unknown handle with a 400 (InvalidRequest, "Unable to resolve handle") or a 404
		if errors.As(err, &xe) && (xe.StatusCode == http.StatusBadRequest || xe.StatusCode == http.StatusNotFound) {
			return "", fmt.Errorf("%w: %s", ErrHandleNotFound, handle)
		}
		return "", fmt.Errorf("%w: %w", ErrHandleResolutionFailed, err)
	}

	did, err := syntax.ParseDID(out.Did)
	if err != nil {
		return "", fmt.Errorf("%w: service returned bad DID: %w", ErrHandleResolutionFailed, err)
	}
	return did, nil
}
