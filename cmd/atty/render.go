package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/notifs"
	"github.com/atty-social/atty/util"
)

func formatActor(a *bsky.ActorDefs_ProfileViewBasic) string {
	if a == nil {
		return "(unknown)"
	}
	if a.DisplayName != nil && *a.DisplayName != "" {
		return fmt.Sprintf("%s (@%s)", *a.DisplayName, a.Handle)
	}
	return "@" + a.Handle
}

// formatAge renders a record timestamp relative to now, eg "5m". Timestamps come from the author's client and
// may be junk; those are shown as-is.
func formatAge(createdAt string, now time.Time) string {
	t, err := util.ParseTimestamp(createdAt)
	if err != nil {
		return createdAt
	}
	d := now.Sub(t)
	switch {
	case d < 0:
		return t.UTC().Format("2006-01-02")
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.UTC().Format("2006-01-02")
	}
}

func formatPost(author *bsky.ActorDefs_ProfileViewBasic, post *bsky.FeedPost, uri string, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s · %s\n", formatActor(author), formatAge(post.CreatedAt, now))
	if post.Reply != nil && post.Reply.Parent != nil {
		fmt.Fprintf(&sb, "  ↳ reply to %s\n", post.Reply.Parent.Uri)
	}
	for _, line := range strings.Split(post.Text, "\n") {
		fmt.Fprintf(&sb, "  %s\n", line)
	}
	if quoted, ok := post.GetEmbedRecord(); ok {
		fmt.Fprintf(&sb, "  [quoting %s]\n", quoted.Uri)
	}
	fmt.Fprintf(&sb, "  %s\n\n", uri)
	return sb.String()
}

func formatPostView(pv *bsky.FeedDefs_PostView, now time.Time) string {
	if pv == nil {
		return "[post unavailable]\n\n"
	}
	post, ok := pv.FeedPost()
	if !ok {
		return fmt.Sprintf("%s\n  [not a post]\n  %s\n\n", formatActor(pv.Author), pv.Uri)
	}
	return formatPost(pv.Author, post, pv.Uri, now)
}

func formatEvents(events []notifs.Event, now time.Time) string {
	var sb strings.Builder
	for _, ev := range events {
		switch e := ev.(type) {
		case *notifs.InfoLine:
			sb.WriteString(e.Text + "\n")
		case *notifs.RenderContext:
			uri := e.Attributes.Uri
			if e.Subject != nil {
				uri = e.Subject.Uri
			}
			sb.WriteString(formatPost(e.Author, e.Post, uri, now))
		case *notifs.Skipped:
			fmt.Fprintf(&sb, "[skipped: %v]\n\n", e.Err)
		}
	}
	return sb.String()
}
