package models

import (
	"bytes"
	"encoding/json"
)

// EventItem is one entry from the events and event-invitations
// endpoints.
type EventItem struct {
	ID          FlexInt `json:"id"`
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	Date        string  `json:"date"`
	EndDate     string  `json:"end_date"`
	Type        FlexInt `json:"type"`
	TypeName    string  `json:"type_name"`
}

// EventsResponse is the payload of the events endpoints: a bare array
// or an object wrapping the list under "data" or "invitations".
type EventsResponse struct {
	Items []EventItem
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *EventsResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Items)
	}

	var wrapper struct {
		Data        []EventItem `json:"data"`
		Invitations []EventItem `json:"invitations"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if wrapper.Data != nil {
		r.Items = wrapper.Data
	} else {
		r.Items = wrapper.Invitations
	}

	return nil
}

// Event is a normalized calendar entry.
type Event struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	TypeName    string `json:"type_name,omitempty"`
	IsTest      bool   `json:"is_test"`
}

// NewEvent normalizes one events entry. Type ids 12 through 15 mark
// tests and exams.
func NewEvent(item EventItem) Event {
	title := item.Title
	if title == "" {
		title = item.Name
	}
	if title == "" {
		title = "Untitled"
	}

	start := item.StartDate
	if start == "" {
		start = item.Date
	}

	return Event{
		ID:          item.ID.Int64(),
		Title:       title,
		Description: item.Description,
		StartDate:   start,
		EndDate:     item.EndDate,
		TypeName:    item.TypeName,
		IsTest:      item.Type >= 12 && item.Type <= 15,
	}
}
