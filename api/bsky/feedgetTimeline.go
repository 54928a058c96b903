package bsky

// schema: app.bsky.feed.getTimeline

import (
	"context"

	lexutil "github.com/atty-social/atty/lex/util"
)

// FeedGetTimeline_Output is the output of a app.bsky.feed.getTimeline call.
type FeedGetTimeline_Output struct {
	Cursor *string                  `json:"cursor,omitempty"`
	Feed   []*FeedDefs_FeedViewPost `json:"feed"`
}

// FeedGetTimeline calls the XRPC method "app.bsky.feed.getTimeline".
//
// algorithm: Variant 'algorithm' for timeline. Implementation-specific.
func FeedGetTimeline(ctx context.Context, c lexutil.LexClient, algorithm string, cursor string, limit int64) (*FeedGetTimeline_Output, error) {
	var out FeedGetTimeline_Output

	params := map[string]any{}
	if algorithm != "" {
		params["algorithm"] = algorithm
	}
	if cursor != "" {
		params["cursor"] = cursor
	}
	if limit != 0 {
		params["limit"] = limit
	}
	if err := c.LexDo(ctx, lexutil.Query, "", "app.bsky.feed.getTimeline", params, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
