package models

import (
	"bytes"
	"encoding/json"
)

// NotificationItem is one entry from the notifications endpoint. The
// field set varies per notification trigger, so every alternative the
// API has been seen to use is declared and resolved in [NewNotification].
type NotificationItem struct {
	ID        FlexString `json:"id"`
	Text      string     `json:"text"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Message   string     `json:"message"`
	CreatedAt string     `json:"created_at"`
	Date      string     `json:"date"`
	// seen_at being set means the notification was opened.
	SeenAt      string     `json:"seen_at"`
	IsRead      bool       `json:"is_read"`
	Read        bool       `json:"read"`
	TriggerSlug string     `json:"notification_trigger_slug"`
	Type        FlexString `json:"type"`
}

// NotificationsResponse is the payload of the notifications endpoint:
// either a bare array or an object wrapping the list under "data"
// (paginated form) or "notifications".
type NotificationsResponse struct {
	Items []NotificationItem
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *NotificationsResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Items)
	}

	var wrapper struct {
		Data          []NotificationItem `json:"data"`
		Notifications []NotificationItem `json:"notifications"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if wrapper.Data != nil {
		r.Items = wrapper.Data
	} else {
		r.Items = wrapper.Notifications
	}

	return nil
}

// Notification is a normalized notification.
type Notification struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Date  string `json:"date"`
	Read  bool   `json:"read"`
	Type  string `json:"type,omitempty"`
}

// NewNotification resolves the alternative field names of one entry:
// title from text/title/subject, body from body/message, date from
// created_at/date, read from seen_at/is_read/read, type from the
// trigger slug with the plain type field as fallback.
func NewNotification(item NotificationItem) Notification {
	title := item.Text
	if title == "" {
		title = item.Title
	}
	if title == "" {
		title = item.Subject
	}
	if title == "" {
		title = "No title"
	}

	body := item.Body
	if body == "" {
		body = item.Message
	}

	date := item.CreatedAt
	if date == "" {
		date = item.Date
	}

	typ := item.TriggerSlug
	if typ == "" {
		typ = item.Type.String()
	}

	return Notification{
		ID:    item.ID.String(),
		Title: title,
		Body:  body,
		Date:  date,
		Read:  item.SeenAt != "" || item.IsRead || item.Read,
		Type:  typ,
	}
}
