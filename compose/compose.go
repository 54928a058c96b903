package compose

import (
	"errors"
	"fmt"

	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/atproto/syntax"
)

var (
	ErrPostTooLong = errors.New("post text too long")
	ErrEmptyPost   = errors.New("post has no text and no embed")
	ErrInvalidRef  = errors.New("invalid record reference")
)

// Max post length, in grapheme clusters and in UTF-8 bytes. Both limits apply.
const (
	MaxPostGraphemes = 300
	MaxPostBytes     = 3000
)

// GenericPostAttributes identifies one version of a record: the URI says which record, the CID which content.
// Record is the post itself, when known.
type GenericPostAttributes struct {
	Uri    string
	Cid    string
	Record *bsky.FeedPost
}

func (a *GenericPostAttributes) StrongRef() *comatproto.RepoStrongRef {
	return &comatproto.RepoStrongRef{
		Uri: a.Uri,
		Cid: a.Cid,
	}
}

// PostWithIdentity is a post being replied to. Record must be set, since its own reply reference decides the
// thread root.
type PostWithIdentity = GenericPostAttributes

// PendingPost is what the user wrote, before facets are resolved. Built by the compose flow and consumed once by
// BuildPost.
type PendingPost struct {
	Text      string
	InReplyTo *PostWithIdentity
	// Quoted post, if any
	Embed *comatproto.RepoStrongRef
	Langs []string
}

// checkRef validates that a strong reference points at a record by AT-URI and carries a decodable CID.
func checkRef(ref *comatproto.RepoStrongRef) error {
	if ref == nil {
		return fmt.Errorf("%w: missing", ErrInvalidRef)
	}
	if _, err := syntax.ParseATURI(ref.Uri); err != nil {
		return fmt.Errorf("%w: uri %q: %w", ErrInvalidRef, ref.Uri, err)
	}
	c, err := syntax.ParseCID(ref.Cid)
	if err != nil {
		return fmt.Errorf("%w: cid %q: %w", ErrInvalidRef, ref.Cid, err)
	}
	if _, err := c.Parse(); err != nil {
		return fmt.Errorf("%w: cid %q: %w", ErrInvalidRef, ref.Cid, err)
	}
	return nil
}
