package notifs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/client"
	"github.com/atty-social/atty/compose"
	lexutil "github.com/atty-social/atty/lex/util"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("notifs")

// PostFetcher hydrates posts by URI in one call. The result may be shorter than uris.
type PostFetcher interface {
	FetchPosts(ctx context.Context, sess *client.Session, uris []string) ([]*bsky.FeedDefs_PostView, error)
}

var _ PostFetcher = (*client.Client)(nil)

type Dispatcher struct {
	Fetcher PostFetcher
	// Send each subject URI at most once in the batch fetch. Off by default, so a page with two likes of the
	// same post asks for it twice.
	DedupeSubjects bool

	logger *slog.Logger
}

func NewDispatcher(f PostFetcher) *Dispatcher {
	return &Dispatcher{
		Fetcher: f,
		logger:  slog.Default().With("system", "notifs"),
	}
}

func (d *Dispatcher) log() *slog.Logger {
	if d.logger == nil {
		return slog.Default().With("system", "notifs")
	}
	return d.logger
}

// subjectUri returns the URI of the post a like or repost points at.
func subjectUri(rec any) (string, bool) {
	switch r := rec.(type) {
	case *bsky.FeedRepost:
		if r.Subject != nil {
			return r.Subject.Uri, true
		}
	case *bsky.FeedLike:
		if r.Subject != nil {
			return r.Subject.Uri, true
		}
	}
	return "", false
}

func recordOf(n *bsky.NotificationListNotifications_Notification) any {
	if n.Record == nil {
		return nil
	}
	return n.Record.Val
}

func (d *Dispatcher) subjects(notifs []*bsky.NotificationListNotifications_Notification) []string {
	var uris []string
	seen := make(map[string]bool)
	for _, n := range notifs {
		uri, ok := subjectUri(recordOf(n))
		if !ok {
			continue
		}
		if d.DedupeSubjects {
			if seen[uri] {
				continue
			}
			seen[uri] = true
		}
		uris = append(uris, uri)
	}
	return uris
}

// Dispatch turns a page of notifications into display events, in input order. Subjects of likes and reposts
// are fetched with a single FetchPosts call (none if there are no likes or reposts). A failed fetch fails the
// whole page; a missing subject or an unknown record only skips that notification.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *client.Session, notifs []*bsky.NotificationListNotifications_Notification) ([]Event, error) {
	ctx, span := tracer.Start(ctx, "Dispatch")
	defer span.End()

	uris := d.subjects(notifs)
	span.SetAttributes(attribute.Int("notifications", len(notifs)), attribute.Int("subjects", len(uris)))

	byUri := make(map[string]*bsky.FeedDefs_PostView)
	if len(uris) > 0 {
		posts, err := d.Fetcher.FetchPosts(ctx, sess, uris)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("fetching notification subjects: %w", err)
		}
		for _, p := range posts {
			if p == nil {
				continue
			}
			if _, ok := byUri[p.Uri]; !ok {
				byUri[p.Uri] = p
			}
		}
	}

	var events []Event
	for _, n := range notifs {
		author := n.Author.Basic()
		switch rec := recordOf(n).(type) {
		case *bsky.FeedPost:
			events = append(events, &RenderContext{
				Author:     author,
				Post:       rec,
				Attributes: compose.GenericPostAttributes{Uri: n.Uri, Cid: n.Cid, Record: rec},
				Reason:     n.Reason,
			})
		case *bsky.FeedRepost:
			uri, _ := subjectUri(rec)
			events = append(events, &InfoLine{Text: actorName(author) + " Reposted:"})
			events = append(events, d.subjectContext(n, author, uri, byUri))
		case *bsky.FeedLike:
			uri, _ := subjectUri(rec)
			events = append(events, &InfoLine{Text: actorName(author) + " Liked:"})
			events = append(events, d.subjectContext(n, author, uri, byUri))
		case *bsky.GraphFollow:
			events = append(events, &InfoLine{Text: actorName(author) + " Followed You"})
		default:
			typ := ""
			if unk, ok := rec.(*lexutil.UnknownType); ok {
				typ = unk.Type
			}
			d.log().Warn("skipping notification with unrecognized record", "uri", n.Uri, "type", typ, "reason", n.Reason)
			events = append(events, &Skipped{NotificationUri: n.Uri, Err: &UnrecognizedRecordError{Type: typ}})
		}
	}
	return events, nil
}

func (d *Dispatcher) subjectContext(n *bsky.NotificationListNotifications_Notification, author *bsky.ActorDefs_ProfileViewBasic, uri string, byUri map[string]*bsky.FeedDefs_PostView) Event {
	view, ok := byUri[uri]
	if !ok {
		d.log().Warn("notification subject not returned", "uri", n.Uri, "subject", uri)
		return &Skipped{NotificationUri: n.Uri, Err: &MissingSubjectError{SubjectUri: uri}}
	}
	post, ok := view.FeedPost()
	if !ok {
		typ := ""
		if view.Record != nil {
			if unk, ok := view.Record.Val.(*lexutil.UnknownType); ok {
				typ = unk.Type
			} else {
				typ = fmt.Sprintf("%T", view.Record.Val)
			}
		}
		d.log().Warn("notification subject is not a post", "uri", n.Uri, "subject", uri, "type", typ)
		return &Skipped{NotificationUri: n.Uri, Err: &MissingSubjectError{SubjectUri: uri, RecordType: typ}}
	}
	return &RenderContext{
		Author:     author,
		Post:       post,
		Attributes: compose.GenericPostAttributes{Uri: n.Uri, Cid: n.Cid, Record: post},
		Reason:     n.Reason,
		Subject:    view,
	}
}

// actorName formats an account as "Display Name (handle)", falling back to the handle when there is no
// display name.
func actorName(a *bsky.ActorDefs_ProfileViewBasic) string {
	if a == nil {
		return "someone"
	}
	name := a.Handle
	if a.DisplayName != nil && *a.DisplayName != "" {
		name = *a.DisplayName
	}
	return fmt.Sprintf("%s (%s)", name, a.Handle)
}
