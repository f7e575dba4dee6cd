package models

import "sort"

// ScheduleHour is one lesson slot from the schedule endpoints.
type ScheduleHour struct {
	SchoolHour   FlexInt `json:"school_hour"`
	FromTime     string  `json:"from_time"`
	ToTime       string  `json:"to_time"`
	CourseName   string  `json:"course_name"`
	TeacherName  string  `json:"teacher_name"`
	Topic        string  `json:"topic"`
	HomeworkText string  `json:"homework_text"`
	RoomName     string  `json:"room_name"`
}

// Subject returns the course name with the usual fallback.
func (h ScheduleHour) Subject() string {
	if h.CourseName == "" {
		return "N/A"
	}
	return h.CourseName
}

// ScheduleResponse is the payload of the schedule endpoints. The hour
// list arrives under either "scheduleHours" or "data".
type ScheduleResponse struct {
	ScheduleHours []ScheduleHour `json:"scheduleHours"`
	Data          []ScheduleHour `json:"data"`
}

// Hours returns whichever list the response carried, sorted by school
// hour.
func (r ScheduleResponse) Hours() []ScheduleHour {
	hours := r.ScheduleHours
	if hours == nil {
		hours = r.Data
	}
	sorted := make([]ScheduleHour, len(hours))
	copy(sorted, hours)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SchoolHour < sorted[j].SchoolHour
	})
	return sorted
}
