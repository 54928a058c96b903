package bsky

// schema: app.bsky.feed.like

import (
	comatproto "github.com/atty-social/atty/api/atproto"
	lexutil "github.com/atty-social/atty/lex/util"
)

func init() {
	lexutil.RegisterType("app.bsky.feed.like", &FeedLike{})
}

// FeedLike is a "main" in the app.bsky.feed.like schema.
//
// Record declaring a 'like' of a piece of subject content.
type FeedLike struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.feed.like"`
	CreatedAt     string                    `json:"createdAt"`
	Subject       *comatproto.RepoStrongRef `json:"subject"`
}
