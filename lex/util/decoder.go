package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	lexTypesMu  sync.RWMutex
	lexTypesMap = make(map[string]reflect.Type)
)

// ErrUnrecognizedType is returned when a record's $type has no registered Go type.
var ErrUnrecognizedType = errors.New("unrecognized lexicon type")

// RegisterType associates a lexicon $type string with a Go struct type. Panics on duplicate registration;
// generated packages call this from init().
func RegisterType(id string, val any) {
	t := reflect.TypeOf(val)

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	lexTypesMu.Lock()
	defer lexTypesMu.Unlock()
	if _, ok := lexTypesMap[id]; ok {
		panic(fmt.Sprintf("already registered type for %q", id))
	}

	lexTypesMap[id] = t
}

// NewFromType returns a pointer to a new zero value of the type registered under the given $type.
func NewFromType(typ string) (any, error) {
	lexTypesMu.RLock()
	t, ok := lexTypesMap[typ]
	lexTypesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedType, typ)
	}
	return reflect.New(t).Interface(), nil
}

func JsonDecodeValue(b []byte) (any, error) {
	tstr, err := TypeExtract(b)
	if err != nil {
		return nil, err
	}

	ival, err := NewFromType(tstr)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, ival); err != nil {
		return nil, err
	}

	return ival, nil
}
