package richtext

import (
	"context"
	"fmt"
	"strings"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("richtext")

// HandleResolutionError is returned when a mentioned handle could not be resolved to a DID. The post should not
// be sent: a mention facet without a DID can not be built.
type HandleResolutionError struct {
	Handle string
	Err    error
}

func (e *HandleResolutionError) Error() string {
	return fmt.Sprintf("resolving mention %q: %v", e.Handle, e.Err)
}

func (e *HandleResolutionError) Unwrap() error {
	return e.Err
}

// ResolveFacets detects mentions and links in text and returns them as facets: all mentions in text order,
// followed by all links in text order. Every mention is resolved with one ResolveHandle call (repeats are
// resolved again); the first failure aborts.
func ResolveFacets(ctx context.Context, text string, resolver identity.HandleResolver) ([]*bsky.RichtextFacet, error) {
	ctx, span := tracer.Start(ctx, "ResolveFacets")
	defer span.End()

	mentions := DetectMentions(text)
	links := FilterLinks(mentions, DetectLinks(text))
	span.SetAttributes(attribute.Int("mentions", len(mentions)), attribute.Int("links", len(links)))

	facets := make([]*bsky.RichtextFacet, 0, len(mentions)+len(links))
	for _, m := range mentions {
		raw := strings.TrimPrefix(m.Handle, "@")
		did, err := resolver.ResolveHandle(ctx, syntax.Handle(raw))
		if err != nil {
			span.RecordError(err)
			return nil, &HandleResolutionError{Handle: raw, Err: err}
		}
		facets = append(facets, &bsky.RichtextFacet{
			Index: &bsky.RichtextFacet_ByteSlice{
				ByteStart: int64(m.Start),
				ByteEnd:   int64(m.End),
			},
			Features: []*bsky.RichtextFacet_Features_Elem{
				{RichtextFacet_Mention: &bsky.RichtextFacet_Mention{
					LexiconTypeID: "app.bsky.richtext.facet#mention",
					Did:           did.String(),
				}},
			},
		})
	}
	for _, l := range links {
		facets = append(facets, &bsky.RichtextFacet{
			Index: &bsky.RichtextFacet_ByteSlice{
				ByteStart: int64(l.Start),
				ByteEnd:   int64(l.End),
			},
			Features: []*bsky.RichtextFacet_Features_Elem{
				{RichtextFacet_Link: &bsky.RichtextFacet_Link{
					LexiconTypeID: "app.bsky.richtext.facet#link",
					Uri:           l.Address,
				}},
			},
		})
	}
	return facets, nil
}
