package compose

import (
	"fmt"
	"time"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/atproto/syntax"
)

func BuildLike(subject *GenericPostAttributes, now time.Time) (*bsky.FeedLike, error) {
	if subject == nil {
		return nil, fmt.Errorf("like subject: %w", ErrInvalidRef)
	}
	ref := subject.StrongRef()
	if err := checkRef(ref); err != nil {
		return nil, fmt.Errorf("like subject: %w", err)
	}
	return &bsky.FeedLike{
		LexiconTypeID: "app.bsky.feed.like",
		CreatedAt:     syntax.DatetimeFromTime(now).String(),
		Subject:       ref,
	}, nil
}

func BuildRepost(subject *GenericPostAttributes, now time.Time) (*bsky.FeedRepost, error) {
	if subject == nil {
		return nil, fmt.Errorf("repost subject: %w", ErrInvalidRef)
	}
	ref := subject.StrongRef()
	if err := checkRef(ref); err != nil {
		return nil, fmt.Errorf("repost subject: %w", err)
	}
	return &bsky.FeedRepost{
		LexiconTypeID: "app.bsky.feed.repost",
		CreatedAt:     syntax.DatetimeFromTime(now).String(),
		Subject:       ref,
	}, nil
}

func BuildFollow(subject syntax.DID, now time.Time) (*bsky.GraphFollow, error) {
	if _, err := syntax.ParseDID(subject.String()); err != nil {
		return nil, fmt.Errorf("follow subject: %w", err)
	}
	return &bsky.GraphFollow{
		LexiconTypeID: "app.bsky.graph.follow",
		CreatedAt:     syntax.DatetimeFromTime(now).String(),
		Subject:       subject.String(),
	}, nil
}
