package richtext

import (
	"context"
	"errors"
	"testing"

	"github.com/atty-social/atty/atproto/identity"
	"github.com/atty-social/atty/atproto/syntax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMentions(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		text     string
		mentions []Mention
	}{
		{"", nil},
		{"no mentions here", nil},
		{"@alice.test hi", []Mention{{Handle: "@alice.test", Start: 0, End: 11}}},
		{"hi @alice.test.", []Mention{{Handle: "@alice.test", Start: 3, End: 14}}},
		{"(@alice.test)", []Mention{{Handle: "@alice.test", Start: 1, End: 12}}},
		{"@a.test @b.test", []Mention{{Handle: "@a.test", Start: 0, End: 7}, {Handle: "@b.test", Start: 8, End: 15}}},
		{"mail bob@example.com", nil},
		{"just @alice", nil},
		{"bad @alice.123", nil},
		// offsets count UTF-8 bytes, not runes
		{"héllo @alice.test", []Mention{{Handle: "@alice.test", Start: 7, End: 18}}},
		{"🙂 @alice.test", []Mention{{Handle: "@alice.test", Start: 5, End: 16}}},
	}

	for _, tc := range testCases {
		assert.Equal(tc.mentions, DetectMentions(tc.text), tc.text)
	}
}

func TestDetectLinks(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		text  string
		links []Link
	}{
		{"nothing to see", nil},
		{"https://example.com", []Link{{Address: "https://example.com", Start: 0, End: 19}}},
		{"see https://example.com/a?b=c.", []Link{{Address: "https://example.com/a?b=c", Start: 4, End: 29}}},
		{"bare example.com/path here", []Link{{Address: "https://example.com/path", Start: 5, End: 21}}},
		{"(see https://en.wikipedia.org/wiki/Go_(programming_language))", []Link{{Address: "https://en.wikipedia.org/wiki/Go_(programming_language)", Start: 5, End: 60}}},
		{"HTTPS://EXAMPLE.COM/Path", []Link{{Address: "https://example.com/Path", Start: 0, End: 24}}},
		{"ünïcode https://example.com", []Link{{Address: "https://example.com", Start: 10, End: 29}}},
	}

	for _, tc := range testCases {
		assert.Equal(tc.links, DetectLinks(tc.text), tc.text)
	}
}

func TestFilterLinks(t *testing.T) {
	assert := assert.New(t)
	mentions := []Mention{{Handle: "@alice.test", Start: 10, End: 21}}

	links := []Link{
		{Address: "a", Start: 0, End: 5},   // before
		{Address: "b", Start: 11, End: 21}, // fully inside
		{Address: "c", Start: 15, End: 30}, // starts inside, runs past the end
		{Address: "d", Start: 21, End: 25}, // starts on the inclusive end
		{Address: "g", Start: 10, End: 21}, // same span as the mention
		{Address: "e", Start: 5, End: 15},  // starts before, runs into the mention
		{Address: "f", Start: 22, End: 30}, // after
	}
	out := FilterLinks(mentions, links)
	var kept []string
	for _, l := range out {
		kept = append(kept, l.Address)
	}
	assert.Equal([]string{"a", "c", "d", "e", "f"}, kept)

	assert.Equal(links, FilterLinks(nil, links))
}

func TestResolveFacets(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	r := identity.NewMockResolver()
	r.Insert(syntax.Handle("alice.bsky.social"), syntax.DID("did:plc:abc"))

	text := "hello @alice.bsky.social see https://example.com"
	facets, err := ResolveFacets(ctx, text, r)
	require.NoError(err)
	require.Len(facets, 2)

	mention := facets[0]
	require.NotNil(mention.Features[0].RichtextFacet_Mention)
	assert.Equal("did:plc:abc", mention.Features[0].RichtextFacet_Mention.Did)
	assert.Equal("@alice.bsky.social", text[mention.Index.ByteStart:mention.Index.ByteEnd])

	link := facets[1]
	require.NotNil(link.Features[0].RichtextFacet_Link)
	assert.Equal("https://example.com", link.Features[0].RichtextFacet_Link.Uri)
	assert.Equal("https://example.com", text[link.Index.ByteStart:link.Index.ByteEnd])

	assert.Equal(1, r.Calls)
}

func TestResolveFacetsOrdering(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	r := identity.NewMockResolver()
	r.Insert(syntax.Handle("alice.test"), syntax.DID("did:plc:alice"))
	r.Insert(syntax.Handle("bob.test"), syntax.DID("did:plc:bob"))

	// links first in the text, mentions still come first in the output
	text := "https://one.example (@alice.test) two.example/x @bob.test @alice.test"
	facets, err := ResolveFacets(ctx, text, r)
	require.NoError(err)
	require.Len(facets, 5)

	assert.Equal("did:plc:alice", facets[0].Features[0].RichtextFacet_Mention.Did)
	assert.Equal("did:plc:bob", facets[1].Features[0].RichtextFacet_Mention.Did)
	assert.Equal("did:plc:alice", facets[2].Features[0].RichtextFacet_Mention.Did)
	assert.Equal("https://one.example", facets[3].Features[0].RichtextFacet_Link.Uri)
	assert.Equal("https://two.example/x", facets[4].Features[0].RichtextFacet_Link.Uri)

	// one resolution per mention, repeats included
	assert.Equal(3, r.Calls)

	for i, a := range facets {
		assert.Less(a.Index.ByteStart, a.Index.ByteEnd)
		for j, b := range facets {
			if i == j {
				continue
			}
			overlap := a.Index.ByteStart < b.Index.ByteEnd && b.Index.ByteStart < a.Index.ByteEnd
			assert.False(overlap, "facets %d and %d overlap", i, j)
		}
	}
}

func TestResolveFacetsHandleInMention(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	r := identity.NewMockResolver()
	r.Insert(syntax.Handle("alice.test"), syntax.DID("did:plc:alice"))

	// the bare handle domain lies inside the mention and is not a link
	facets, err := ResolveFacets(ctx, "hi @alice.test", r)
	require.NoError(err)
	require.Len(facets, 1)
	assert.NotNil(facets[0].Features[0].RichtextFacet_Mention)

	// with a path the link runs past the mention, so only partly overlaps it and is kept
	facets, err = ResolveFacets(ctx, "@alice.test/profile", r)
	require.NoError(err)
	require.Len(facets, 2)
	assert.NotNil(facets[0].Features[0].RichtextFacet_Mention)
	require.NotNil(facets[1].Features[0].RichtextFacet_Link)
	assert.Equal("https://alice.test/profile", facets[1].Features[0].RichtextFacet_Link.Uri)
	assert.Equal(int64(1), facets[1].Index.ByteStart)
	assert.Equal(int64(19), facets[1].Index.ByteEnd)

	// a link that starts before the mention and runs into it is kept
	text := "https://ex.example/a(@alice.test"
	facets, err = ResolveFacets(ctx, text, r)
	require.NoError(err)
	require.Len(facets, 2)
	assert.NotNil(facets[0].Features[0].RichtextFacet_Mention)
	assert.Equal(int64(0), facets[1].Index.ByteStart)
	assert.Equal(int64(len(text)), facets[1].Index.ByteEnd)
}

func TestResolveFacetsUnknownHandle(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	r := identity.NewMockResolver()
	r.Insert(syntax.Handle("alice.test"), syntax.DID("did:plc:alice"))

	facets, err := ResolveFacets(ctx, "hi @alice.test and @ghost.test", r)
	assert.Nil(facets)

	var hre *HandleResolutionError
	assert.True(errors.As(err, &hre))
	assert.Equal("ghost.test", hre.Handle)
	assert.ErrorIs(err, identity.ErrHandleNotFound)
}

func TestResolveFacetsEmpty(t *testing.T) {
	facets, err := ResolveFacets(context.Background(), "plain text", identity.NewMockResolver())
	assert.NoError(t, err)
	assert.Empty(t, facets)
}
