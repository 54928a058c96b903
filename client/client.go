package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"
	lexutil "github.com/atty-social/atty/lex/util"
	"github.com/atty-social/atty/xrpc"

	"golang.org/x/time/rate"
)

// Public AppView, used for handle resolution when no other resolver is configured.
const DefaultAppViewHost = "https://public.api.bsky.app"

// Client talks to a PDS on behalf of a Session. It holds no auth state itself, so one Client can serve any number
// of sessions.
type Client struct {
	// HTTP client for all requests. If nil, util.DefaultHTTPClient() is used.
	HTTPClient *http.Client
	UserAgent  *string
	Limiter    *rate.Limiter

	// Resolver for mention handles. Not session-scoped.
	Resolver identity.HandleResolver

	logger *slog.Logger
}

var _ identity.HandleResolver = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		Resolver: identity.NewCacheResolver(identity.NewAPIResolver(DefaultAppViewHost), 10_000, time.Hour, 2*time.Minute),
		logger:   slog.Default().With("system", "client"),
	}
}

func (c *Client) xrpcClient(host string, auth *xrpc.AuthInfo) *xrpc.Client {
	return &xrpc.Client{
		Client:    c.HTTPClient,
		Host:      host,
		Auth:      auth,
		UserAgent: c.UserAgent,
		Limiter:   c.Limiter,
	}
}

func (c *Client) authed(sess *Session) (*xrpc.Client, error) {
	if err := sess.validate(); err != nil {
		return nil, err
	}
	return c.xrpcClient(sess.Host, sess.authInfo()), nil
}

func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default().With("system", "client")
	}
	return c.logger
}

// Login creates a new session with com.atproto.server.createSession.
func (c *Client) Login(ctx context.Context, host string, identifier string, password string) (*Session, error) {
	xc := c.xrpcClient(host, nil)
	out, err := comatproto.ServerCreateSession(ctx, xc, &comatproto.ServerCreateSession_Input{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sessionFrom(host, out.Did, out.Handle, out.AccessJwt, out.RefreshJwt)
}

// Refresh exchanges the session's refresh token for a fresh pair of tokens.
func (c *Client) Refresh(ctx context.Context, sess *Session) (*Session, error) {
	if sess == nil || sess.RefreshJwt == "" || sess.Host == "" {
		return nil, ErrNoSession
	}
	auth := sess.authInfo()
	// refreshSession is authenticated with the refresh token in the access slot
	auth.AccessJwt = sess.RefreshJwt
	out, err := comatproto.ServerRefreshSession(ctx, c.xrpcClient(sess.Host, auth))
	if err != nil {
		return nil, fmt.Errorf("refreshing session: %w", err)
	}
	return sessionFrom(sess.Host, out.Did, out.Handle, out.AccessJwt, out.RefreshJwt)
}

func sessionFrom(host, did, handle, access, refresh string) (*Session, error) {
	d, err := syntax.ParseDID(did)
	if err != nil {
		return nil, fmt.Errorf("session DID: %w", err)
	}
	h, err := syntax.ParseHandle(handle)
	if err != nil {
		// accounts with a broken handle still get a usable session
		h = syntax.HandleInvalid
	}
	return &Session{
		DID:        d,
		Handle:     h,
		AccessJwt:  access,
		RefreshJwt: refresh,
		Host:       host,
	}, nil
}

func (c *Client) Timeline(ctx context.Context, sess *Session, limit int64) ([]*bsky.FeedDefs_FeedViewPost, error) {
	xc, err := c.authed(sess)
	if err != nil {
		return nil, err
	}
	out, err := bsky.FeedGetTimeline(ctx, xc, "", "", limit)
	if err != nil {
		return nil, fmt.Errorf("fetching timeline: %w", err)
	}
	return out.Feed, nil
}

func (c *Client) Notifications(ctx context.Context, sess *Session, limit int64) ([]*bsky.NotificationListNotifications_Notification, error) {
	xc, err := c.authed(sess)
	if err != nil {
		return nil, err
	}
	out, err := bsky.NotificationListNotifications(ctx, xc, "", limit, "")
	if err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}
	return out.Notifications, nil
}

// FetchPosts hydrates a batch of post URIs in one app.bsky.feed.getPosts call. Posts the server could not find
// are missing from the result.
func (c *Client) FetchPosts(ctx context.Context, sess *Session, uris []string) ([]*bsky.FeedDefs_PostView, error) {
	xc, err := c.authed(sess)
	if err != nil {
		return nil, err
	}
	out, err := bsky.FeedGetPosts(ctx, xc, uris)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return out.Posts, nil
}

// GetPostThread fetches a post and up to depth levels of its ancestors.
func (c *Client) GetPostThread(ctx context.Context, sess *Session, uri string, depth int64) (*bsky.FeedGetPostThread_Output_Thread, error) {
	xc, err := c.authed(sess)
	if err != nil {
		return nil, err
	}
	out, err := bsky.FeedGetPostThread(ctx, xc, depth, depth, uri)
	if err != nil {
		return nil, fmt.Errorf("fetching thread: %w", err)
	}
	if out.Thread == nil {
		return nil, fmt.Errorf("fetching thread: empty response")
	}
	return out.Thread, nil
}

func (c *Client) ResolveHandle(ctx context.Context, handle syntax.Handle) (syntax.DID, error) {
	if c.Resolver == nil {
		return "", fmt.Errorf("%w: no resolver configured", identity.ErrHandleResolutionFailed)
	}
	return c.Resolver.ResolveHandle(ctx, handle)
}

func (c *Client) createRecord(ctx context.Context, sess *Session, collection string, record any) (*comatproto.RepoStrongRef, error) {
	xc, err := c.authed(sess)
	if err != nil {
		return nil, err
	}
	out, err := comatproto.RepoCreateRecord(ctx, xc, &comatproto.RepoCreateRecord_Input{
		Collection: collection,
		Repo:       sess.DID.String(),
		Record:     &lexutil.LexiconTypeDecoder{Val: record},
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s record: %w", collection, err)
	}
	c.log().Debug("created record", "uri", out.Uri, "cid", out.Cid)
	return &comatproto.RepoStrongRef{Uri: out.Uri, Cid: out.Cid}, nil
}

func (c *Client) SendPost(ctx context.Context, sess *Session, post *bsky.FeedPost) (*comatproto.RepoStrongRef, error) {
	return c.createRecord(ctx, sess, "app.bsky.feed.post", post)
}

func (c *Client) Repost(ctx context.Context, sess *Session, repost *bsky.FeedRepost) (*comatproto.RepoStrongRef, error) {
	return c.createRecord(ctx, sess, "app.bsky.feed.repost", repost)
}

func (c *Client) Like(ctx context.Context, sess *Session, like *bsky.FeedLike) (*comatproto.RepoStrongRef, error) {
	return c.createRecord(ctx, sess, "app.bsky.feed.like", like)
}

func (c *Client) Follow(ctx context.Context, sess *Session, follow *bsky.GraphFollow) (*comatproto.RepoStrongRef, error) {
	return c.createRecord(ctx, sess, "app.bsky.graph.follow", follow)
}
