package tui

import "github.com/x1024/shkolo-cli/models"

type studentsLoadedMsg struct {
	students []models.Pupil
	err      error
}

// tabDataMsg carries the fetched content of one tab. studentID stamps
// which pupil the fetch was issued for, so late responses land in the
// right bucket even after the selection moved on.
type tabDataMsg struct {
	tab       tab
	studentID int64

	homework      []models.Homework
	grades        []models.CourseReport
	hours         []models.ScheduleHour
	absences      []models.Absence
	notifications []models.Notification

	err error
}
