package syntax

import (
	"errors"
	"regexp"
)

var recordKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9_~.:-]{1,512}$`)

// RecordKey is the last path segment of a record AT-URI.
//
// Syntax specification: https://atproto.com/specs/record-key
type RecordKey string

func ParseRecordKey(raw string) (RecordKey, error) {
	if raw == "" || raw == "." || raw == ".." {
		return "", errors.New("recordkey can not be empty, '.', or '..'")
	}
	if len(raw) > 512 {
		return "", errors.New("recordkey is too long (512 chars max)")
	}
	if !recordKeyRegex.MatchString(raw) {
		return "", errors.New("recordkey syntax didn't validate via regex")
	}
	return RecordKey(raw), nil
}

func (r RecordKey) String() string {
	return string(r)
}
