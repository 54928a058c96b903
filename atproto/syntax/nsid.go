package syntax

import (
	"errors"
	"regexp"
	"strings"
)

var nsidRegex = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+(\.[a-zA-Z]([a-zA-Z]{0,61}[a-zA-Z])?)$`)

// NSID is a namespaced identifier for a lexicon schema, eg "app.bsky.feed.post". In AT-URIs it names the record
// collection.
//
// Syntax specification: https://atproto.com/specs/nsid
type NSID string

func ParseNSID(raw string) (NSID, error) {
	if raw == "" {
		return "", errors.New("expected NSID, got empty string")
	}
	if len(raw) > 317 {
		return "", errors.New("NSID is too long (317 chars max)")
	}
	if !nsidRegex.MatchString(raw) {
		return "", errors.New("NSID syntax didn't validate via regex")
	}
	return NSID(raw), nil
}

// Name is the final segment, eg "post".
func (n NSID) Name() string {
	s := string(n)
	return s[strings.LastIndex(s, ".")+1:]
}

func (n NSID) String() string {
	return string(n)
}
