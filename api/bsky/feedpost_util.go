package bsky

import (
	comatproto "github.com/atty-social/atty/api/atproto"
)

func (fp *FeedPost) GetEmbedRecord() (*comatproto.RepoStrongRef, bool) {
	if fp.Embed != nil && fp.Embed.EmbedRecord != nil && fp.Embed.EmbedRecord.Record != nil {
		return fp.Embed.EmbedRecord.Record, true
	}

	return nil, false
}

func (fp *FeedPost) GetReplyParentUri() (string, bool) {
	if fp.Reply != nil && fp.Reply.Parent != nil {
		return fp.Reply.Parent.Uri, true
	}

	return "", false
}

func (fp *FeedPost) GetReplyRoot() (*comatproto.RepoStrongRef, bool) {
	if fp.Reply != nil && fp.Reply.Root != nil {
		return fp.Reply.Root, true
	}

	return nil, false
}
