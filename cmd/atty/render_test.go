package main

import (
	"testing"
	"time"

	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/compose"
	lexutil "github.com/atty-social/atty/lex/util"
	"github.com/atty-social/atty/notifs"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFormatAge(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		createdAt string
		expected  string
	}{
		{"2024-03-01T11:59:30.000Z", "now"},
		{"2024-03-01T11:55:00Z", "5m"},
		{"2024-03-01T09:00:00+00:00", "3h"},
		{"2024-02-27T12:00:00.000Z", "2d"},
		{"2023-12-25T08:00:00.000Z", "2023-12-25"},
		{"2024-03-02T00:00:00.000Z", "2024-03-02"},
		{"not a date", "not a date"},
	}
	for _, tc := range testCases {
		assert.Equal(tc.expected, formatAge(tc.createdAt, now), tc.createdAt)
	}
}

func TestFormatPost(t *testing.T) {
	assert := assert.New(t)
	name := "Alice"
	author := &bsky.ActorDefs_ProfileViewBasic{Did: "did:plc:alice", Handle: "alice.test", DisplayName: &name}
	post := &bsky.FeedPost{
		Text:      "line one\nline two",
		CreatedAt: "2024-03-01T11:55:00.000Z",
		Reply: &bsky.FeedPost_ReplyRef{
			Parent: &comatproto.RepoStrongRef{Uri: "at://did:plc:bob/app.bsky.feed.post/1"},
			Root:   &comatproto.RepoStrongRef{Uri: "at://did:plc:bob/app.bsky.feed.post/1"},
		},
	}

	expected := "Alice (@alice.test) · 5m\n" +
		"  ↳ reply to at://did:plc:bob/app.bsky.feed.post/1\n" +
		"  line one\n" +
		"  line two\n" +
		"  at://did:plc:alice/app.bsky.feed.post/2\n\n"
	assert.Equal(expected, formatPost(author, post, "at://did:plc:alice/app.bsky.feed.post/2", now))

	assert.Equal("@bob.test", formatActor(&bsky.ActorDefs_ProfileViewBasic{Handle: "bob.test"}))

	pv := &bsky.FeedDefs_PostView{
		Uri:    "at://did:plc:bob/app.bsky.feed.post/3",
		Author: &bsky.ActorDefs_ProfileViewBasic{Handle: "bob.test"},
		Record: &lexutil.LexiconTypeDecoder{Val: &lexutil.UnknownType{Type: "app.example.thing"}},
	}
	assert.Equal("[post unavailable]\n\n", formatPostView(nil, now))
	assert.Equal("@bob.test\n  [not a post]\n  at://did:plc:bob/app.bsky.feed.post/3\n\n", formatPostView(pv, now))
}

func TestFormatEvents(t *testing.T) {
	assert := assert.New(t)
	author := &bsky.ActorDefs_ProfileViewBasic{Handle: "x.test"}
	post := &bsky.FeedPost{Text: "hi", CreatedAt: "2024-03-01T11:59:59Z"}

	out := formatEvents([]notifs.Event{
		&notifs.InfoLine{Text: "X (x.test) Liked:"},
		&notifs.RenderContext{
			Author:     author,
			Post:       post,
			Attributes: compose.GenericPostAttributes{Uri: "at://did:plc:x/app.bsky.feed.like/1"},
			Subject:    &bsky.FeedDefs_PostView{Uri: "at://did:plc:me/app.bsky.feed.post/1"},
		},
		&notifs.Skipped{Err: &notifs.MissingSubjectError{SubjectUri: "at://gone"}},
	}, now)

	expected := "X (x.test) Liked:\n" +
		"@x.test · now\n" +
		"  hi\n" +
		"  at://did:plc:me/app.bsky.feed.post/1\n\n" +
		"[skipped: subject at://gone not found]\n\n"
	assert.Equal(expected, out)
}
