package compose

import (
	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/api/bsky"
)

// BuildReplyRef returns the reply reference for a post replying to target, or nil for a top-level post.
//
// The parent is always target itself. The root is copied from target's own reply reference when it has one;
// otherwise target is top-level and is also the root. Only one hop is taken: every reply record carries its
// thread root, so there is no need to fetch further ancestors.
func BuildReplyRef(target *PostWithIdentity) *bsky.FeedPost_ReplyRef {
	if target == nil {
		return nil
	}

	parent := target.StrongRef()
	root := parent
	if target.Record != nil {
		if r, ok := target.Record.GetReplyRoot(); ok {
			root = &comatproto.RepoStrongRef{Uri: r.Uri, Cid: r.Cid}
		}
	}
	return &bsky.FeedPost_ReplyRef{
		Root:   root,
		Parent: parent,
	}
}
