package bsky

// schema: app.bsky.richtext.facet

import (
	"encoding/json"
	"fmt"

	lexutil "github.com/atty-social/atty/lex/util"
)

// RichtextFacet is a "main" in the app.bsky.richtext.facet schema.
//
// Annotation of a sub-string within rich text.
type RichtextFacet struct {
	Features []*RichtextFacet_Features_Elem `json:"features"`
	Index    *RichtextFacet_ByteSlice       `json:"index"`
}

// RichtextFacet_ByteSlice is a "byteSlice" in the app.bsky.richtext.facet schema.
//
// Specifies the sub-string range a facet feature applies to. Start index is inclusive, end index is exclusive. Indices are zero-indexed, counting bytes of the UTF-8 encoded text. NOTE: some languages, like Javascript, use UTF-16 or Unicode codepoints for string slice indexing; in these languages, convert to byte arrays before working with facets.
type RichtextFacet_ByteSlice struct {
	ByteEnd   int64 `json:"byteEnd"`
	ByteStart int64 `json:"byteStart"`
}

type RichtextFacet_Features_Elem struct {
	RichtextFacet_Mention *RichtextFacet_Mention
	RichtextFacet_Link    *RichtextFacet_Link
	Unrecognized          *lexutil.UnknownType
}

func (t *RichtextFacet_Features_Elem) MarshalJSON() ([]byte, error) {
	if t.RichtextFacet_Mention != nil {
		t.RichtextFacet_Mention.LexiconTypeID = "app.bsky.richtext.facet#mention"
		return json.Marshal(t.RichtextFacet_Mention)
	}
	if t.RichtextFacet_Link != nil {
		t.RichtextFacet_Link.LexiconTypeID = "app.bsky.richtext.facet#link"
		return json.Marshal(t.RichtextFacet_Link)
	}
	if t.Unrecognized != nil {
		return t.Unrecognized.MarshalJSON()
	}
	return nil, fmt.Errorf("cannot marshal empty enum")
}

func (t *RichtextFacet_Features_Elem) UnmarshalJSON(b []byte) error {
	typ, err := lexutil.TypeExtract(b)
	if err != nil {
		return err
	}

	switch typ {
	case "app.bsky.richtext.facet#mention":
		t.RichtextFacet_Mention = new(RichtextFacet_Mention)
		return json.Unmarshal(b, t.RichtextFacet_Mention)
	case "app.bsky.richtext.facet#link":
		t.RichtextFacet_Link = new(RichtextFacet_Link)
		return json.Unmarshal(b, t.RichtextFacet_Link)
	default:
		t.Unrecognized = &lexutil.UnknownType{Type: typ, JSON: append(json.RawMessage(nil), b...)}
		return nil
	}
}

// RichtextFacet_Link is a "link" in the app.bsky.richtext.facet schema.
//
// Facet feature for a URL. The text URL may have been simplified or truncated, but the facet reference should be a complete URL.
type RichtextFacet_Link struct {
	LexiconTypeID string `json:"$type,const=app.bsky.richtext.facet#link"`
	Uri           string `json:"uri"`
}

// RichtextFacet_Mention is a "mention" in the app.bsky.richtext.facet schema.
//
// Facet feature for mention of another account. The text is usually a handle, including a '@' prefix, but the facet reference is a DID.
type RichtextFacet_Mention struct {
	LexiconTypeID string `json:"$type,const=app.bsky.richtext.facet#mention"`
	Did           string `json:"did"`
}
