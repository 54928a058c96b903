package syntax

import (
	"errors"
	"strings"
)

// AtIdentifier is either a DID or a Handle; login and AT-URI authorities accept both.
type AtIdentifier string

func ParseAtIdentifier(raw string) (AtIdentifier, error) {
	if raw == "" {
		return "", errors.New("expected AT account identifier, got empty string")
	}
	if strings.HasPrefix(raw, "did:") {
		did, err := ParseDID(raw)
		if err != nil {
			return "", err
		}
		return did.AtIdentifier(), nil
	}
	handle, err := ParseHandle(raw)
	if err != nil {
		return "", err
	}
	return handle.AtIdentifier(), nil
}

func (n AtIdentifier) IsDID() bool {
	return strings.HasPrefix(string(n), "did:")
}

func (n AtIdentifier) IsHandle() bool {
	return n != "" && !n.IsDID()
}

func (n AtIdentifier) AsHandle() (Handle, error) {
	if n.IsHandle() {
		return Handle(n), nil
	}
	return "", errors.New("AT Identifier is not a Handle")
}

func (n AtIdentifier) AsDID() (DID, error) {
	if n.IsDID() {
		return DID(n), nil
	}
	return "", errors.New("AT Identifier is not a DID")
}

func (n AtIdentifier) Normalize() AtIdentifier {
	if n.IsHandle() {
		return Handle(n).Normalize().AtIdentifier()
	}
	return n
}

func (n AtIdentifier) String() string {
	return string(n)
}

func (n AtIdentifier) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *AtIdentifier) UnmarshalText(text []byte) error {
	atid, err := ParseAtIdentifier(string(text))
	if err != nil {
		return err
	}
	*n = atid
	return nil
}
