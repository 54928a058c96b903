package bsky

// schema: app.bsky.graph.follow

import (
	lexutil "github.com/atty-social/atty/lex/util"
)

func init() {
	lexutil.RegisterType("app.bsky.graph.follow", &GraphFollow{})
}

// GraphFollow is a "main" in the app.bsky.graph.follow schema.
//
// Record declaring a social 'follow' relationship of another account.
type GraphFollow struct {
	LexiconTypeID string `json:"$type,const=app.bsky.graph.follow"`
	CreatedAt     string `json:"createdAt"`
	Subject       string `json:"subject"`
}
