package client

import (
	"errors"

	"github.com/atty-social/atty/atproto/syntax"
	"github.com/atty-social/atty/xrpc"
)

var ErrNoSession = errors.New("no auth session")

// Session is an authenticated account on a PDS. It is a plain value: every call that needs auth takes one, and
// Refresh returns a new one rather than mutating it.
type Session struct {
	DID        syntax.DID    `json:"did"`
	Handle     syntax.Handle `json:"handle"`
	AccessJwt  string        `json:"accessJwt"`
	RefreshJwt string        `json:"refreshJwt"`
	// PDS host, including schema. Eg: "https://bsky.social"
	Host string `json:"host"`
}

func (s *Session) validate() error {
	if s == nil || s.AccessJwt == "" || s.Host == "" {
		return ErrNoSession
	}
	return nil
}

func (s *Session) authInfo() *xrpc.AuthInfo {
	return &xrpc.AuthInfo{
		AccessJwt:  s.AccessJwt,
		RefreshJwt: s.RefreshJwt,
		Handle:     s.Handle.String(),
		Did:        s.DID.String(),
	}
}
