package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	LexiconTypeID string `json:"$type,const=com.example.test"`
	Text          string `json:"text"`
}

func init() {
	RegisterType("com.example.test", testRecord{})
}

func TestLTDMarshal(t *testing.T) {

	var empty *LexiconTypeDecoder

	_, err := empty.MarshalJSON()
	if err == nil {
		t.Fatal("expected an error marshalling a nil (but not a panic)")
	}

	emptyVal := LexiconTypeDecoder{}

	_, err = emptyVal.MarshalJSON()
	if err == nil {
		t.Fatal("expected an error marshalling a nil (but not a panic)")
	}
}

func TestNewFromType(t *testing.T) {
	assert := assert.New(t)

	raw, err := NewFromType("com.example.test")
	assert.NoError(err)
	rec, ok := raw.(*testRecord)
	assert.True(ok)
	assert.Equal("", rec.Text)

	_, err = NewFromType("bogus.type")
	assert.ErrorIs(err, ErrUnrecognizedType)
}

func TestDecodeRegistered(t *testing.T) {
	var out struct {
		Field *LexiconTypeDecoder
	}
	const input = `{"Field":{"$type":"com.example.test","text":"hello"}}`

	require.NoError(t, json.Unmarshal([]byte(input), &out))
	rec, ok := out.Field.Val.(*testRecord)
	require.True(t, ok)
	assert.Equal(t, "hello", rec.Text)
}

func TestMissingTypeField(t *testing.T) {
	assert := assert.New(t)
	var out struct {
		Field *LexiconTypeDecoder
	}
	const input = `{"Field":{"Some_stuff":"but $type is missing"}}`

	if err := json.Unmarshal([]byte(input), &out); err != nil {
		t.Fatalf("failed to unmarshal: %s", err)
	}
	unk, ok := out.Field.Val.(*UnknownType)
	assert.True(ok)
	assert.Equal("", unk.Type)
}

func TestUnknownTypeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	const input = `{"$type":"com.example.other","n":1}`

	var ltd LexiconTypeDecoder
	assert.NoError(json.Unmarshal([]byte(input), &ltd))
	unk, ok := ltd.Val.(*UnknownType)
	assert.True(ok)
	assert.Equal("com.example.other", unk.Type)

	out, err := json.Marshal(&ltd)
	assert.NoError(err)
	assert.JSONEq(input, string(out))
}
