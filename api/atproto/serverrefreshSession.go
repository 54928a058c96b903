package atproto

import (
	"context"

	lexutil "github.com/atty-social/atty/lex/util"
)

// schema: com.atproto.server.refreshSession

// ServerRefreshSession_Output is the output of a com.atproto.server.refreshSession call.
type ServerRefreshSession_Output struct {
	AccessJwt  string `json:"accessJwt"`
	Did        string `json:"did"`
	Handle     string `json:"handle"`
	RefreshJwt string `json:"refreshJwt"`
}

// ServerRefreshSession calls the XRPC method "com.atproto.server.refreshSession".
//
// The request must be authenticated with the refresh token, not the access token.
func ServerRefreshSession(ctx context.Context, c lexutil.LexClient) (*ServerRefreshSession_Output, error) {
	var out ServerRefreshSession_Output
	if err := c.LexDo(ctx, lexutil.Procedure, "", "com.atproto.server.refreshSession", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
