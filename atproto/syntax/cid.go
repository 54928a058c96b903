package syntax

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ipfs/go-cid"
)

var cidRegex = regexp.MustCompile(`^[a-zA-Z0-9+=]{8,256}$`)

// CID is a CIDv1 in string form. The string check is cheap; call [CID.Parse] when the value is about to be
// written into a record and must really decode.
type CID string

func ParseCID(raw string) (CID, error) {
	if len(raw) > 256 {
		return "", errors.New("CID is too long (256 chars max)")
	}
	if !cidRegex.MatchString(raw) {
		return "", errors.New("CID syntax didn't validate via regex")
	}
	if strings.HasPrefix(raw, "Qm") {
		return "", errors.New("CIDv0 not allowed in this version of atproto")
	}
	return CID(raw), nil
}

// Parse fully decodes the CID with go-cid (multibase, version, codec, multihash).
func (c CID) Parse() (cid.Cid, error) {
	return cid.Decode(string(c))
}

func (c CID) String() string {
	return string(c)
}

func (c CID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CID) UnmarshalText(text []byte) error {
	parsed, err := ParseCID(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
