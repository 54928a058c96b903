package syntax

import (
	"errors"
	"regexp"
	"strings"
)

// DID is a syntactically valid decentralized identifier, the stable account identifier that handles resolve to.
//
// Syntax specification: https://atproto.com/specs/did
type DID string

var didRegex = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)

func ParseDID(raw string) (DID, error) {
	if raw == "" {
		return "", errors.New("expected DID, got empty string")
	}
	if len(raw) > 2*1024 {
		return "", errors.New("DID is too long (2048 chars max)")
	}
	if !didRegex.MatchString(raw) {
		return "", errors.New("DID syntax didn't validate via regex")
	}
	return DID(raw), nil
}

// The DID method ("plc", "web"), lower-cased.
func (d DID) Method() string {
	parts := strings.SplitN(string(d), ":", 3)
	if len(parts) < 3 {
		return ""
	}
	return strings.ToLower(parts[1])
}

func (d DID) Identifier() string {
	parts := strings.SplitN(string(d), ":", 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

func (d DID) AtIdentifier() AtIdentifier {
	return AtIdentifier(d)
}

func (d DID) String() string {
	return string(d)
}

func (d DID) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DID) UnmarshalText(text []byte) error {
	did, err := ParseDID(string(text))
	if err != nil {
		return err
	}
	*d = did
	return nil
}
