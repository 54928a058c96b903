package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

type typeExtractor struct {
	Type string `json:"$type"`
}

func TypeExtract(b []byte) (string, error) {
	var te typeExtractor
	if err := json.Unmarshal(b, &te); err != nil {
		return "", err
	}

	return te.Type, nil
}

// UnknownType holds a record whose $type is not registered in this process. The raw JSON is kept so callers can
// report it or pass it through unchanged.
type UnknownType struct {
	Type string
	JSON json.RawMessage
}

func (u *UnknownType) MarshalJSON() ([]byte, error) {
	return u.JSON, nil
}

// LexiconTypeDecoder wraps a value from an open union (eg, the "record" field of a notification), decoding it to
// the Go type registered for its $type.
type LexiconTypeDecoder struct {
	Val any
}

func (ltd *LexiconTypeDecoder) UnmarshalJSON(b []byte) error {
	val, err := JsonDecodeValue(b)
	if errors.Is(err, ErrUnrecognizedType) {
		typ, _ := TypeExtract(b)
		ltd.Val = &UnknownType{Type: typ, JSON: append(json.RawMessage(nil), b...)}
		return nil
	}
	if err != nil {
		return err
	}

	ltd.Val = val
	return nil
}

func (ltd *LexiconTypeDecoder) MarshalJSON() ([]byte, error) {
	if ltd == nil || ltd.Val == nil {
		return nil, fmt.Errorf("LexiconTypeDecoder: cannot marshal nil value")
	}
	return json.Marshal(ltd.Val)
}
