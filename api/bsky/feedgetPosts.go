package bsky

// schema: app.bsky.feed.getPosts

import (
	"context"

	lexutil "github.com/atty-social/atty/lex/util"
)

// FeedGetPosts_Output is the output of a app.bsky.feed.getPosts call.
type FeedGetPosts_Output struct {
	Posts []*FeedDefs_PostView `json:"posts"`
}

// FeedGetPosts calls the XRPC method "app.bsky.feed.getPosts".
//
// uris: List of post AT-URIs to return hydrated views for. Posts which can not be found are left out of the
// response, so callers must not assume one view per URI.
func FeedGetPosts(ctx context.Context, c lexutil.LexClient, uris []string) (*FeedGetPosts_Output, error) {
	var out FeedGetPosts_Output

	params := map[string]any{
		"uris": uris,
	}
	if err := c.LexDo(ctx, lexutil.Query, "", "app.bsky.feed.getPosts", params, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
