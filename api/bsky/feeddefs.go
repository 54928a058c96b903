package bsky

// schema: app.bsky.feed.defs

import (
	"encoding/json"
	"fmt"

	lexutil "github.com/atty-social/atty/lex/util"
)

// FeedDefs_PostView is a "postView" in the app.bsky.feed.defs schema.
type FeedDefs_PostView struct {
	LexiconTypeID string                      `json:"$type,omitempty"`
	Author        *ActorDefs_ProfileViewBasic `json:"author"`
	Cid           string                      `json:"cid"`
	IndexedAt     string                      `json:"indexedAt"`
	LikeCount     *int64                      `json:"likeCount,omitempty"`
	QuoteCount    *int64                      `json:"quoteCount,omitempty"`
	Record        *lexutil.LexiconTypeDecoder `json:"record"`
	ReplyCount    *int64                      `json:"replyCount,omitempty"`
	RepostCount   *int64                      `json:"repostCount,omitempty"`
	Uri           string                      `json:"uri"`
}

// FeedPost returns the post record, if the view's record decoded as one.
func (pv *FeedDefs_PostView) FeedPost() (*FeedPost, bool) {
	if pv == nil || pv.Record == nil {
		return nil, false
	}
	fp, ok := pv.Record.Val.(*FeedPost)
	return fp, ok
}

// FeedDefs_FeedViewPost is a "feedViewPost" in the app.bsky.feed.defs schema.
type FeedDefs_FeedViewPost struct {
	Post   *FeedDefs_PostView            `json:"post"`
	Reason *FeedDefs_FeedViewPost_Reason `json:"reason,omitempty"`
}

type FeedDefs_FeedViewPost_Reason struct {
	FeedDefs_ReasonRepost *FeedDefs_ReasonRepost
	Unrecognized          *lexutil.UnknownType
}

func (t *FeedDefs_FeedViewPost_Reason) MarshalJSON() ([]byte, error) {
	if t.FeedDefs_ReasonRepost != nil {
		t.FeedDefs_ReasonRepost.LexiconTypeID = "app.bsky.feed.defs#reasonRepost"
		return json.Marshal(t.FeedDefs_ReasonRepost)
	}
	if t.Unrecognized != nil {
		return t.Unrecognized.MarshalJSON()
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}

func (t *FeedDefs_FeedViewPost_Reason) UnmarshalJSON(b []byte) error {
	typ, err := lexutil.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.feed.defs#reasonRepost":
		t.FeedDefs_ReasonRepost = new(FeedDefs_ReasonRepost)
		return json.Unmarshal(b, t.FeedDefs_ReasonRepost)
	default:
		t.Unrecognized = &lexutil.UnknownType{Type: typ, JSON: append(json.RawMessage(nil), b...)}
		return nil
	}
}

// FeedDefs_ReasonRepost is a "reasonRepost" in the app.bsky.feed.defs schema.
type FeedDefs_ReasonRepost struct {
	LexiconTypeID string                      `json:"$type,const=app.bsky.feed.defs#reasonRepost"`
	By            *ActorDefs_ProfileViewBasic `json:"by"`
	IndexedAt     string                      `json:"indexedAt"`
}

// FeedDefs_NotFoundPost is a "notFoundPost" in the app.bsky.feed.defs schema.
type FeedDefs_NotFoundPost struct {
	LexiconTypeID string `json:"$type,const=app.bsky.feed.defs#notFoundPost"`
	NotFound      bool   `json:"notFound"`
	Uri           string `json:"uri"`
}

// FeedDefs_BlockedAuthor is a "blockedAuthor" in the app.bsky.feed.defs schema.
type FeedDefs_BlockedAuthor struct {
	Did string `json:"did"`
}

// FeedDefs_BlockedPost is a "blockedPost" in the app.bsky.feed.defs schema.
type FeedDefs_BlockedPost struct {
	LexiconTypeID string                  `json:"$type,const=app.bsky.feed.defs#blockedPost"`
	Author        *FeedDefs_BlockedAuthor `json:"author"`
	Blocked       bool                    `json:"blocked"`
	Uri           string                  `json:"uri"`
}

// FeedDefs_ThreadViewPost is a "threadViewPost" in the app.bsky.feed.defs schema.
//
// Replies are not decoded: this client only walks the ancestor chain.
type FeedDefs_ThreadViewPost struct {
	LexiconTypeID string                          `json:"$type,const=app.bsky.feed.defs#threadViewPost"`
	Parent        *FeedDefs_ThreadViewPost_Parent `json:"parent,omitempty"`
	Post          *FeedDefs_PostView              `json:"post"`
}

// FeedDefs_ThreadViewPost_Parent is the union of what can sit in a thread slot: a visible post, a deleted
// post, a blocked post, or something newer than this client understands.
type FeedDefs_ThreadViewPost_Parent struct {
	FeedDefs_ThreadViewPost *FeedDefs_ThreadViewPost
	FeedDefs_NotFoundPost   *FeedDefs_NotFoundPost
	FeedDefs_BlockedPost    *FeedDefs_BlockedPost
	Unrecognized            *lexutil.UnknownType
}

func (t *FeedDefs_ThreadViewPost_Parent) MarshalJSON() ([]byte, error) {
	return marshalThreadSlot(t.FeedDefs_ThreadViewPost, t.FeedDefs_NotFoundPost, t.FeedDefs_BlockedPost, t.Unrecognized)
}

func (t *FeedDefs_ThreadViewPost_Parent) UnmarshalJSON(b []byte) error {
	return unmarshalThreadSlot(b, &t.FeedDefs_ThreadViewPost, &t.FeedDefs_NotFoundPost, &t.FeedDefs_BlockedPost, &t.Unrecognized)
}

func marshalThreadSlot(tvp *FeedDefs_ThreadViewPost, nf *FeedDefs_NotFoundPost, bp *FeedDefs_BlockedPost, unk *lexutil.UnknownType) ([]byte, error) {
	if tvp != nil {
		tvp.LexiconTypeID = "app.bsky.feed.defs#threadViewPost"
		return json.Marshal(tvp)
	}
	if nf != nil {
		nf.LexiconTypeID = "app.bsky.feed.defs#notFoundPost"
		return json.Marshal(nf)
	}
	if bp != nil {
		bp.LexiconTypeID = "app.bsky.feed.defs#blockedPost"
		return json.Marshal(bp)
	}
	if unk != nil {
		return unk.MarshalJSON()
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}

func unmarshalThreadSlot(b []byte, tvp **FeedDefs_ThreadViewPost, nf **FeedDefs_NotFoundPost, bp **FeedDefs_BlockedPost, unk **lexutil.UnknownType) error {
	typ, err := lexutil.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.feed.defs#threadViewPost":
		*tvp = new(FeedDefs_ThreadViewPost)
		return json.Unmarshal(b, *tvp)
	case "app.bsky.feed.defs#notFoundPost":
		*nf = new(FeedDefs_NotFoundPost)
		return json.Unmarshal(b, *nf)
	case "app.bsky.feed.defs#blockedPost":
		*bp = new(FeedDefs_BlockedPost)
		return json.Unmarshal(b, *bp)
	default:
		*unk = &lexutil.UnknownType{Type: typ, JSON: append(json.RawMessage(nil), b...)}
		return nil
	}
}
