package thread

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/client"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("thread")

var ErrInvalidDepth = errors.New("thread depth must be positive")

// Fetcher gets a post and its ancestors, up to depth levels, in one remote call.
type Fetcher interface {
	GetPostThread(ctx context.Context, sess *client.Session, uri string, depth int64) (*bsky.FeedGetPostThread_Output_Thread, error)
}

var _ Fetcher = (*client.Client)(nil)

// StopReason records why a walk ended.
type StopReason int

const (
	// The last post has no parent: it is the thread root, or the depth bound was reached.
	StopRoot StopReason = iota
	StopNotFound
	StopBlocked
	StopUnrecognized
)

func (r StopReason) String() string {
	switch r {
	case StopRoot:
		return "root"
	case StopNotFound:
		return "not-found"
	case StopBlocked:
		return "blocked"
	case StopUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Chain is a post followed by its ancestors, leaf first.
type Chain struct {
	Posts []*bsky.FeedDefs_PostView
	Stop  StopReason
}

type Walker struct {
	Fetcher Fetcher

	logger *slog.Logger
}

func NewWalker(f Fetcher) *Walker {
	return &Walker{
		Fetcher: f,
		logger:  slog.Default().With("system", "thread"),
	}
}

func (w *Walker) log() *slog.Logger {
	if w.logger == nil {
		return slog.Default().With("system", "thread")
	}
	return w.logger
}

// Walk fetches the thread of uri once and flattens its parent links. It never fetches more: an ancestor beyond
// depth, or one that is missing, blocked, or of an unknown kind, ends the chain without an error.
//
// If the requested post itself is not a visible post, the chain is empty.
func (w *Walker) Walk(ctx context.Context, sess *client.Session, uri string, depth int) (*Chain, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	ctx, span := tracer.Start(ctx, "Walk", trace.WithAttributes(
		attribute.String("uri", uri),
		attribute.Int("depth", depth),
	))
	defer span.End()

	root, err := w.Fetcher.GetPostThread(ctx, sess, uri, int64(depth))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	chain := &Chain{}
	switch {
	case root == nil:
		w.log().Warn("empty thread response, showing nothing", "uri", uri)
		chain.Stop = StopUnrecognized
		return chain, nil
	case root.FeedDefs_ThreadViewPost != nil:
		// walked below
	case root.FeedDefs_NotFoundPost != nil:
		chain.Stop = StopNotFound
		return chain, nil
	case root.FeedDefs_BlockedPost != nil:
		w.log().Warn("thread root is blocked, showing nothing", "uri", uri)
		chain.Stop = StopBlocked
		return chain, nil
	default:
		typ := ""
		if root.Unrecognized != nil {
			typ = root.Unrecognized.Type
		}
		w.log().Warn("unrecognized thread root, showing nothing", "uri", uri, "type", typ)
		chain.Stop = StopUnrecognized
		return chain, nil
	}

	node := root.FeedDefs_ThreadViewPost
	for {
		if node.Post == nil {
			w.log().Warn("thread entry without a post, stopping", "uri", uri, "posts", len(chain.Posts))
			chain.Stop = StopUnrecognized
			break
		}
		chain.Posts = append(chain.Posts, node.Post)
		p := node.Parent
		if p == nil {
			chain.Stop = StopRoot
			break
		}
		if p.FeedDefs_ThreadViewPost != nil {
			node = p.FeedDefs_ThreadViewPost
			continue
		}
		switch {
		case p.FeedDefs_NotFoundPost != nil:
			chain.Stop = StopNotFound
		case p.FeedDefs_BlockedPost != nil:
			chain.Stop = StopBlocked
		default:
			chain.Stop = StopUnrecognized
		}
		break
	}

	span.SetAttributes(attribute.Int("posts", len(chain.Posts)), attribute.String("stop", chain.Stop.String()))
	return chain, nil
}
