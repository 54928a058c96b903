package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var aturiRegex = regexp.MustCompile(`^at:\/\/(?P<authority>[a-zA-Z0-9._:%-]+)(\/(?P<collection>[a-zA-Z0-9-.]+)(\/(?P<rkey>[a-zA-Z0-9_~.:-]{1,512}))?)?$`)

// ATURI is a syntactically valid "at://" URI with no query or fragment part. Post, like, repost and follow
// records are all addressed this way.
//
// Syntax specification: https://atproto.com/specs/at-uri-scheme
type ATURI string

func ParseATURI(raw string) (ATURI, error) {
	if len(raw) > 8192 {
		return "", errors.New("ATURI is too long (8192 chars max)")
	}
	parts := aturiRegex.FindStringSubmatch(raw)
	if parts == nil {
		return "", errors.New("AT-URI syntax didn't validate via regex")
	}
	if _, err := ParseAtIdentifier(parts[1]); err != nil {
		return "", fmt.Errorf("AT-URI authority section neither a DID nor Handle: %s", parts[1])
	}
	if parts[3] != "" {
		if _, err := ParseNSID(parts[3]); err != nil {
			return "", fmt.Errorf("AT-URI first path segment not an NSID: %s", parts[3])
		}
	}
	if parts[5] != "" {
		if _, err := ParseRecordKey(parts[5]); err != nil {
			return "", fmt.Errorf("AT-URI second path segment not a RecordKey: %s", parts[5])
		}
	}
	return ATURI(raw), nil
}

// segments splits a validated URI into authority, collection and record key; missing parts are empty.
func (n ATURI) segments() (string, string, string) {
	parts := strings.SplitN(strings.TrimPrefix(string(n), "at://"), "/", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[0], parts[1], parts[2]
}

func (n ATURI) Authority() AtIdentifier {
	a, _, _ := n.segments()
	return AtIdentifier(a)
}

func (n ATURI) Collection() NSID {
	_, c, _ := n.segments()
	return NSID(c)
}

func (n ATURI) RecordKey() RecordKey {
	_, _, r := n.segments()
	return RecordKey(r)
}

func (n ATURI) String() string {
	return string(n)
}

func (n ATURI) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *ATURI) UnmarshalText(text []byte) error {
	aturi, err := ParseATURI(string(text))
	if err != nil {
		return err
	}
	*n = aturi
	return nil
}
