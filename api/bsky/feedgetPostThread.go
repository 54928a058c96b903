package bsky

// schema: app.bsky.feed.getPostThread

import (
	"context"

	lexutil "github.com/atty-social/atty/lex/util"
)

// FeedGetPostThread_Output is the output of a app.bsky.feed.getPostThread call.
type FeedGetPostThread_Output struct {
	Thread *FeedGetPostThread_Output_Thread `json:"thread"`
}

// FeedGetPostThread_Output_Thread has the same variants as a thread parent slot.
type FeedGetPostThread_Output_Thread struct {
	FeedDefs_ThreadViewPost *FeedDefs_ThreadViewPost
	FeedDefs_NotFoundPost   *FeedDefs_NotFoundPost
	FeedDefs_BlockedPost    *FeedDefs_BlockedPost
	Unrecognized            *lexutil.UnknownType
}

func (t *FeedGetPostThread_Output_Thread) MarshalJSON() ([]byte, error) {
	return marshalThreadSlot(t.FeedDefs_ThreadViewPost, t.FeedDefs_NotFoundPost, t.FeedDefs_BlockedPost, t.Unrecognized)
}

func (t *FeedGetPostThread_Output_Thread) UnmarshalJSON(b []byte) error {
	return unmarshalThreadSlot(b, &t.FeedDefs_ThreadViewPost, &t.FeedDefs_NotFoundPost, &t.FeedDefs_BlockedPost, &t.Unrecognized)
}

// FeedGetPostThread calls the XRPC method "app.bsky.feed.getPostThread".
//
// depth: How many levels of reply depth should be included in response.
// parentHeight: How many levels of parent (and grandparent, etc) post to include.
func FeedGetPostThread(ctx context.Context, c lexutil.LexClient, depth int64, parentHeight int64, uri string) (*FeedGetPostThread_Output, error) {
	var out FeedGetPostThread_Output

	params := map[string]any{
		"uri": uri,
	}
	if depth != 0 {
		params["depth"] = depth
	}
	if parentHeight != 0 {
		params["parentHeight"] = parentHeight
	}
	if err := c.LexDo(ctx, lexutil.Query, "", "app.bsky.feed.getPostThread", params, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
