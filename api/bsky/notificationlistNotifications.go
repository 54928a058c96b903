package bsky

// schema: app.bsky.notification.listNotifications

import (
	"context"

	lexutil "github.com/atty-social/atty/lex/util"
)

// NotificationListNotifications_Notification is a "notification" in the app.bsky.notification.listNotifications schema.
type NotificationListNotifications_Notification struct {
	Author    *ActorDefs_ProfileView `json:"author"`
	Cid       string                 `json:"cid"`
	IndexedAt string                 `json:"indexedAt"`
	IsRead    bool                   `json:"isRead"`
	// reason: The reason why this notification was delivered - e.g. your post was liked, or you received a new follower.
	Reason        string                      `json:"reason"`
	ReasonSubject *string                     `json:"reasonSubject,omitempty"`
	Record        *lexutil.LexiconTypeDecoder `json:"record"`
	Uri           string                      `json:"uri"`
}

// NotificationListNotifications_Output is the output of a app.bsky.notification.listNotifications call.
type NotificationListNotifications_Output struct {
	Cursor        *string                                       `json:"cursor,omitempty"`
	Notifications []*NotificationListNotifications_Notification `json:"notifications"`
	SeenAt        *string                                       `json:"seenAt,omitempty"`
}

// NotificationListNotifications calls the XRPC method "app.bsky.notification.listNotifications".
func NotificationListNotifications(ctx context.Context, c lexutil.LexClient, cursor string, limit int64, seenAt string) (*NotificationListNotifications_Output, error) {
	var out NotificationListNotifications_Output

	params := map[string]any{}
	if cursor != "" {
		params["cursor"] = cursor
	}
	if limit != 0 {
		params["limit"] = limit
	}
	if seenAt != "" {
		params["seenAt"] = seenAt
	}
	if err := c.LexDo(ctx, lexutil.Query, "", "app.bsky.notification.listNotifications", params, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
