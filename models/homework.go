package models

import "strings"

// HomeworkCourse is one course entry from the homework courses
// endpoint. CycGroupID keys the per-course homework list requests and
// the cycGroupHomeworksCount map.
type HomeworkCourse struct {
	CycGroupID      FlexInt `json:"cyc_group_id"`
	CourseName      string  `json:"course_name"`
	CourseShortName string  `json:"course_short_name"`
}

// Subject returns the short course name, falling back to the full one.
func (c HomeworkCourse) Subject() string {
	if c.CourseShortName != "" {
		return c.CourseShortName
	}
	if c.CourseName != "" {
		return c.CourseName
	}
	return "Unknown"
}

// HomeworkCoursesResponse is the payload of the homework courses
// endpoint. The counts map is keyed by the stringified cyc group id;
// courses with a zero count have no homework and are skipped without
// issuing a list request.
type HomeworkCoursesResponse struct {
	Courses []HomeworkCourse   `json:"courses"`
	Counts  map[string]FlexInt `json:"cycGroupHomeworksCount"`
}

// HomeworkItem is one entry from the per-course homework list.
type HomeworkItem struct {
	ID              FlexInt `json:"id"`
	HomeworkText    string  `json:"homework_text"`
	HomeworkDueDate string  `json:"homework_due_date"`
	ShiDate         string  `json:"shi_date"`
	ShiDateForSort  string  `json:"shi_date_for_sort"`
}

// HomeworkListResponse is the payload of the homework list endpoint.
type HomeworkListResponse struct {
	Homeworks []HomeworkItem `json:"homeworks"`
}

// Homework is a normalized assignment with the course it belongs to.
// DateSort carries the API's sortable date representation and orders
// newest-first when compared descending as a string.
type Homework struct {
	ID          int64  `json:"id,omitempty"`
	Subject     string `json:"subject"`
	Text        string `json:"text"`
	Date        string `json:"date"`
	DueDate     string `json:"due_date,omitempty"`
	DateSort    string `json:"date_sort,omitempty"`
	DueDateSort string `json:"due_date_sort,omitempty"`
}

// NewHomework builds a Homework from a list item and its course
// subject. The due date arrives as DD.MM.YYYY and is additionally
// converted to YYYY-MM-DD so it sorts lexicographically.
func NewHomework(item HomeworkItem, subject string) Homework {
	return Homework{
		ID:          item.ID.Int64(),
		Subject:     subject,
		Text:        item.HomeworkText,
		Date:        item.ShiDate,
		DueDate:     item.HomeworkDueDate,
		DateSort:    item.ShiDateForSort,
		DueDateSort: SortableDate(item.HomeworkDueDate),
	}
}

// SortableDate converts a DD.MM.YYYY date into YYYY-MM-DD. Values in
// any other layout are returned unchanged.
func SortableDate(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
