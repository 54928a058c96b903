package bsky

// schema: app.bsky.feed.post

import (
	"encoding/json"
	"fmt"

	comatproto "github.com/atty-social/atty/api/atproto"
	lexutil "github.com/atty-social/atty/lex/util"
)

func init() {
	lexutil.RegisterType("app.bsky.feed.post", &FeedPost{})
}

// FeedPost is a "main" in the app.bsky.feed.post schema.
//
// Record containing a Bluesky post.
type FeedPost struct {
	LexiconTypeID string `json:"$type,const=app.bsky.feed.post"`
	// createdAt: Client-declared timestamp when this post was originally created.
	CreatedAt string          `json:"createdAt"`
	Embed     *FeedPost_Embed `json:"embed,omitempty"`
	// facets: Annotations of text (mentions, URLs, hashtags, etc)
	Facets []*RichtextFacet `json:"facets,omitempty"`
	// langs: Indicates human language of post primary text content.
	Langs []string           `json:"langs,omitempty"`
	Reply *FeedPost_ReplyRef `json:"reply,omitempty"`
	// text: The primary post content. May be an empty string, if there are embeds.
	Text string `json:"text"`
}

// FeedPost_Embed is the embed union on a post. Only record (quote) embeds are produced by this client; other
// embed types on received posts are kept as Unrecognized.
type FeedPost_Embed struct {
	EmbedRecord  *EmbedRecord
	Unrecognized *lexutil.UnknownType
}

func (t *FeedPost_Embed) MarshalJSON() ([]byte, error) {
	if t.EmbedRecord != nil {
		t.EmbedRecord.LexiconTypeID = "app.bsky.embed.record"
		return json.Marshal(t.EmbedRecord)
	}
	if t.Unrecognized != nil {
		return t.Unrecognized.MarshalJSON()
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}

func (t *FeedPost_Embed) UnmarshalJSON(b []byte) error {
	typ, err := lexutil.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.embed.record":
		t.EmbedRecord = new(EmbedRecord)
		return json.Unmarshal(b, t.EmbedRecord)
	default:
		t.Unrecognized = &lexutil.UnknownType{Type: typ, JSON: append(json.RawMessage(nil), b...)}
		return nil
	}
}

// FeedPost_ReplyRef is a "replyRef" in the app.bsky.feed.post schema.
type FeedPost_ReplyRef struct {
	Parent *comatproto.RepoStrongRef `json:"parent"`
	Root   *comatproto.RepoStrongRef `json:"root"`
}
