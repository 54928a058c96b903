package bsky

// schema: app.bsky.embed.record

import (
	comatproto "github.com/atty-social/atty/api/atproto"
)

// EmbedRecord is a "main" in the app.bsky.embed.record schema.
//
// A representation of a record embedded in a Bluesky record (eg, a post). For example, a quote-post, or sharing a feed generator record.
type EmbedRecord struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.embed.record"`
	Record        *comatproto.RepoStrongRef `json:"record"`
}
