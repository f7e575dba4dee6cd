package models

import (
	"bytes"
	"encoding/json"
)

// TaskItem is one entry from the tasks endpoints, used by the
// student-account fallback of the homework report.
type TaskItem struct {
	ID       FlexInt `json:"id"`
	Title    string  `json:"title"`
	Name     string  `json:"name"`
	Deadline string  `json:"deadline"`
}

// DisplayTitle returns the task title with the usual fallback chain.
func (t TaskItem) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	return "Untitled"
}

// TasksResponse is the payload of the tasks endpoints: a bare array or
// an object wrapping the list under "assigned" or "data".
type TasksResponse struct {
	Items []TaskItem
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *TasksResponse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Items)
	}

	var wrapper struct {
		Assigned []TaskItem `json:"assigned"`
		Data     []TaskItem `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if wrapper.Assigned != nil {
		r.Items = wrapper.Assigned
	} else {
		r.Items = wrapper.Data
	}

	return nil
}
