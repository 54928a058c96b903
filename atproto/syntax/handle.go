package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	handleRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

	// special handle string constant indicating that handle resolution failed
	HandleInvalid = Handle("handle.invalid")
)

// Handle is a syntactically valid account handle, eg "alice.bsky.social". Handles are case-insensitive; compare
// them after [Handle.Normalize].
//
// Syntax specification: https://atproto.com/specs/handle
type Handle string

func ParseHandle(raw string) (Handle, error) {
	if raw == "" {
		return "", errors.New("expected handle, got empty string")
	}
	if len(raw) > 253 {
		return "", errors.New("handle is too long (253 chars max)")
	}
	if !handleRegex.MatchString(raw) {
		return "", fmt.Errorf("handle syntax didn't validate via regex: %s", raw)
	}
	return Handle(raw), nil
}

// TLD returns the last label of the handle, lower-cased.
func (h Handle) TLD() string {
	s := string(h.Normalize())
	return s[strings.LastIndex(s, ".")+1:]
}

// Some top-level domains are never valid for real accounts, even though they pass syntax checks. ".test" is
// allowed for development.
func (h Handle) AllowedTLD() bool {
	switch h.TLD() {
	case "local", "arpa", "invalid", "localhost", "internal", "example", "onion", "alt":
		return false
	}
	return true
}

func (h Handle) IsInvalidHandle() bool {
	return h.Normalize() == HandleInvalid
}

func (h Handle) Normalize() Handle {
	return Handle(strings.ToLower(string(h)))
}

func (h Handle) AtIdentifier() AtIdentifier {
	return AtIdentifier(h)
}

func (h Handle) String() string {
	return string(h)
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	handle, err := ParseHandle(string(text))
	if err != nil {
		return err
	}
	*h = handle
	return nil
}
