package bsky

// schema: app.bsky.feed.repost

import (
	comatproto "github.com/atty-social/atty/api/atproto"
	lexutil "github.com/atty-social/atty/lex/util"
)

func init() {
	lexutil.RegisterType("app.bsky.feed.repost", &FeedRepost{})
}

// FeedRepost is a "main" in the app.bsky.feed.repost schema.
//
// Record representing a 'repost' of an existing Bluesky post.
type FeedRepost struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.feed.repost"`
	CreatedAt     string                    `json:"createdAt"`
	Subject       *comatproto.RepoStrongRef `json:"subject"`
}
