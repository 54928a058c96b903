package notifs

import (
	"fmt"

	"github.com/atty-social/atty/api/bsky"
	"github.com/atty-social/atty/compose"
)

// Event is one item of dispatch output, in display order. It is one of *InfoLine, *RenderContext or *Skipped.
type Event interface {
	isEvent()
}

// A line of text about who did what, shown before the post it refers to (if any).
type InfoLine struct {
	Text string
}

// RenderContext is a post ready for display and for reactions (reply, like, repost).
type RenderContext struct {
	// The account that caused the notification
	Author *bsky.ActorDefs_ProfileViewBasic
	// The post to show: the notifying post itself, or the subject of a like or repost
	Post *bsky.FeedPost
	// Identity of the notification record, not of the subject
	Attributes compose.GenericPostAttributes
	// Notification reason, eg "reply", "mention", "like"
	Reason string
	// The hydrated subject post, for likes and reposts
	Subject *bsky.FeedDefs_PostView
}

// A notification that could not be turned into a RenderContext. Err is a *MissingSubjectError or an
// *UnrecognizedRecordError.
type Skipped struct {
	NotificationUri string
	Err             error
}

func (*InfoLine) isEvent()      {}
func (*RenderContext) isEvent() {}
func (*Skipped) isEvent()       {}

// MissingSubjectError is a like or repost whose subject post did not come back from the batch fetch (eg, it was
// deleted), or came back as something other than a post.
type MissingSubjectError struct {
	SubjectUri string
	// Set when a view came back but its record was not a post
	RecordType string
}

func (e *MissingSubjectError) Error() string {
	if e.RecordType != "" {
		return fmt.Sprintf("subject %s is a %q record, not a post", e.SubjectUri, e.RecordType)
	}
	return fmt.Sprintf("subject %s not found", e.SubjectUri)
}

// UnrecognizedRecordError is a notification whose record type this client does not handle.
type UnrecognizedRecordError struct {
	Type string
}

func (e *UnrecognizedRecordError) Error() string {
	return fmt.Sprintf("unrecognized notification record type %q", e.Type)
}
