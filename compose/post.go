package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"
	"github.com/atty-social/atty/richtext"

	"github.com/rivo/uniseg"
)

func graphemeCount(s string) int {
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n++
	}
	return n
}

// checkLength enforces the post length limits.
func checkLength(text string) error {
	if len(text) > MaxPostBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrPostTooLong, len(text), MaxPostBytes)
	}
	if n := graphemeCount(text); n > MaxPostGraphemes {
		return fmt.Errorf("%w: %d characters (max %d)", ErrPostTooLong, n, MaxPostGraphemes)
	}
	return nil
}

// BuildPost turns a pending post into a post record: facets are resolved (which may call resolver once per
// mention), the reply reference is derived from InReplyTo, and a quoted post becomes a record embed. Nothing
// is written; validation errors are returned before any handle is resolved.
func BuildPost(ctx context.Context, pending *PendingPost, resolver identity.HandleResolver, now time.Time) (*bsky.FeedPost, error) {
	if pending.Text == "" && pending.Embed == nil {
		return nil, ErrEmptyPost
	}
	if err := checkLength(pending.Text); err != nil {
		return nil, err
	}

	reply := BuildReplyRef(pending.InReplyTo)
	if reply != nil {
		if err := checkRef(reply.Parent); err != nil {
			return nil, fmt.Errorf("reply parent: %w", err)
		}
		if err := checkRef(reply.Root); err != nil {
			return nil, fmt.Errorf("reply root: %w", err)
		}
	}

	var embed *bsky.FeedPost_Embed
	if pending.Embed != nil {
		if err := checkRef(pending.Embed); err != nil {
			return nil, fmt.Errorf("quoted post: %w", err)
		}
		embed = &bsky.FeedPost_Embed{
			EmbedRecord: &bsky.EmbedRecord{
				LexiconTypeID: "app.bsky.embed.record",
				Record:        pending.Embed,
			},
		}
	}

	facets, err := richtext.ResolveFacets(ctx, pending.Text, resolver)
	if err != nil {
		return nil, err
	}
	if len(facets) == 0 {
		facets = nil
	}

	return &bsky.FeedPost{
		LexiconTypeID: "app.bsky.feed.post",
		CreatedAt:     syntax.DatetimeFromTime(now).String(),
		Text:          pending.Text,
		Facets:        facets,
		Reply:         reply,
		Embed:         embed,
		Langs:         pending.Langs,
	}, nil
}
