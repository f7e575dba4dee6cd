package models

import "time"

// StudentHomework is the homework report section for one pupil.
type StudentHomework struct {
	Student  Pupil      `json:"student"`
	Homework []Homework `json:"homework"`
}

// StudentGrades is the grades report section for one pupil. Courses
// without any grade data are filtered out during normalization.
type StudentGrades struct {
	Student Pupil          `json:"student"`
	Courses []CourseReport `json:"grades"`
}

// StudentSchedule is the schedule report section for one pupil.
type StudentSchedule struct {
	Student Pupil          `json:"student"`
	Date    string         `json:"date"`
	Hours   []ScheduleHour `json:"schedule"`
}

// StudentAbsences is the absences report section for one pupil.
type StudentAbsences struct {
	Student  Pupil     `json:"student"`
	Absences []Absence `json:"absences"`
}

// StudentEvents is the per-pupil invitations section of the events
// report.
type StudentEvents struct {
	Student Pupil   `json:"student"`
	Events  []Event `json:"events"`
}

// StudentSummary condenses one pupil's day: today's lessons, the most
// recent homework entries and the number of courses with grades.
type StudentSummary struct {
	Student        Pupil          `json:"student"`
	TodaySchedule  []ScheduleHour `json:"today_schedule"`
	RecentHomework []Homework     `json:"recent_homework"`
	GradesCount    int            `json:"grades_count"`
}

// StudentFallback carries the data shown when the account has no child
// pupils: the account's own schedule for today plus its assigned tasks.
type StudentFallback struct {
	TodaySchedule []ScheduleHour `json:"today_schedule"`
	Tasks         []TaskItem     `json:"assigned_tasks"`
}

// AuthStatus describes the persisted session, if any. TokenExpiry is
// zero when the token carries no parseable expiry claim.
type AuthStatus struct {
	Authenticated bool
	Users         []User
	SchoolYear    int64
	TokenExpiry   time.Time
}

// HomeworkReport is the assembled homework report. For accounts
// without child pupils Sections is empty, StudentAccount is set and
// Fallback carries the account's own data.
type HomeworkReport struct {
	Sections       []StudentHomework
	StudentAccount bool
	Fallback       *StudentFallback
	Cache          CacheInfo
}

// GradesReport is the assembled grades report.
type GradesReport struct {
	Sections       []StudentGrades
	StudentAccount bool
	Cache          CacheInfo
}

// ScheduleReport is the assembled schedule report for one date. For
// accounts without child pupils MySchedule holds the account's own
// lessons.
type ScheduleReport struct {
	Date           string
	Sections       []StudentSchedule
	StudentAccount bool
	MySchedule     []ScheduleHour
	Cache          CacheInfo
}

// AbsencesReport is the assembled absences report.
type AbsencesReport struct {
	Sections       []StudentAbsences
	StudentAccount bool
	Cache          CacheInfo
}

// SummaryReport is the assembled per-pupil day summary.
type SummaryReport struct {
	Sections []StudentSummary
	Cache    CacheInfo
}

// EventsReport is the assembled events report: the school-wide list
// plus, for parent accounts, each pupil's event invitations.
type EventsReport struct {
	Events   []Event
	Sections []StudentEvents
	Cache    CacheInfo
}
