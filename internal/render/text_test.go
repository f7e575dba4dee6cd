package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/models"
)

func renderText(fn func(t *Text)) string {
	var buf bytes.Buffer
	fn(NewText(&buf))
	return buf.String()
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "N/A"},
		{name: "rfc3339", in: "2026-02-20T14:30:00Z", want: "20.02.2026 14:30"},
		{name: "fractional seconds", in: "2026-02-20T14:30:00.123456Z", want: "20.02.2026 14:30"},
		{name: "no zone", in: "2026-02-20T14:30:00", want: "20.02.2026 14:30"},
		{name: "space separated", in: "2026-02-20 14:30:00", want: "20.02.2026 14:30"},
		{name: "bare date", in: "2026-02-20", want: "20.02.2026 00:00"},
		{name: "unparsable passes through", in: "tomorrow", want: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", Clip("short", 10))
	assert.Equal(t, "exact", Clip("exact", 5))
	assert.Equal(t, "longer", Clip("longer text", 6))
	// clipping counts runes, not bytes
	assert.Equal(t, "абв", Clip("абвгд", 3))
}

func TestHomework_RendersSectionsWithDueDates(t *testing.T) {
	report := &models.HomeworkReport{
		Sections: []models.StudentHomework{{
			Student: models.Pupil{ID: 101, Name: "Maria Petrova"},
			Homework: []models.Homework{
				{Date: "20.02.2026", Subject: "Mathematics", Text: "p. 44, ex. 3", DueDate: "25.02.2026"},
				{Date: "18.02.2026", Subject: "English", Text: "essay"},
			},
		}},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Homework",
		strings.Repeat("=", 60),
		"",
		"👤 Maria Petrova",
		strings.Repeat("=", 40),
		"",
		"   [20.02.2026] Mathematics → Due: 25.02.2026",
		"   📝 p. 44, ex. 3",
		"",
		"   [18.02.2026] English",
		"   📝 essay",
		"",
		strings.Repeat("-", 60),
		"",
		"✅ Done",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Homework(report) })
	require.Equal(t, want, got)
}

func TestHomework_EmptySectionAndCacheMarker(t *testing.T) {
	report := &models.HomeworkReport{
		Sections: []models.StudentHomework{{
			Student: models.Pupil{ID: 101, Name: "Georgi Petrov"},
		}},
		Cache: models.CacheInfo{Cached: true, Age: "5m ago"},
	}

	got := renderText(func(r *Text) { r.Homework(report) })

	assert.Contains(t, got, "(cached 5m ago)\n")
	assert.Contains(t, got, "\n   No homework found.\n")
	assert.Contains(t, got, "✅ Done\n")
}

func TestHomework_CapsListAtTwenty(t *testing.T) {
	var homework []models.Homework
	for i := 0; i < 25; i++ {
		homework = append(homework, models.Homework{
			Date:    fmt.Sprintf("%02d.02.2026", i+1),
			Subject: "Mathematics",
			Text:    "exercise",
		})
	}
	report := &models.HomeworkReport{
		Sections: []models.StudentHomework{{
			Student:  models.Pupil{ID: 101, Name: "Maria Petrova"},
			Homework: homework,
		}},
	}

	got := renderText(func(r *Text) { r.Homework(report) })

	assert.Equal(t, 20, strings.Count(got, "   📝 exercise"))
	assert.Contains(t, got, "\n   ... and 5 more homework entries\n")
}

func TestHomework_StudentAccountFallback(t *testing.T) {
	report := &models.HomeworkReport{
		StudentAccount: true,
		Fallback: &models.StudentFallback{
			TodaySchedule: []models.ScheduleHour{
				{SchoolHour: 1, CourseName: "Mathematics", HomeworkText: "p. 10"},
				{SchoolHour: 2, CourseName: "English"},
			},
			Tasks: []models.TaskItem{
				{Title: "Read chapter 4", Deadline: "2026-03-01"},
				{},
			},
		},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Homework",
		strings.Repeat("=", 60),
		"",
		"No children found. This might be a student account.",
		"",
		"📅 Today's Schedule:",
		"   1. Mathematics",
		"      📝 HOMEWORK: p. 10",
		"   2. English",
		"",
		"📋 Assigned Tasks:",
		"   • Read chapter 4",
		"     Due: 2026-03-01",
		"   • Untitled",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Homework(report) })
	require.Equal(t, want, got)
}

func TestSchedule_RendersHoursWithDetails(t *testing.T) {
	report := &models.ScheduleReport{
		Date: "2026-02-10",
		Sections: []models.StudentSchedule{
			{
				Student: models.Pupil{ID: 101, Name: "Maria Petrova"},
				Date:    "2026-02-10",
				Hours: []models.ScheduleHour{
					{SchoolHour: 1, FromTime: "08:00", ToTime: "08:45", CourseName: "Mathematics", TeacherName: "D. Dimitrova", Topic: "Fractions", HomeworkText: "p. 44"},
					{SchoolHour: 2, FromTime: "09:00", ToTime: "09:45", CourseName: "English"},
				},
			},
			{
				Student: models.Pupil{ID: 102, Name: "Georgi Petrov"},
				Date:    "2026-02-10",
			},
		},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Schedule for 2026-02-10",
		strings.Repeat("=", 60),
		"",
		"👤 Maria Petrova",
		strings.Repeat("-", 40),
		"   1. [08:00-08:45] Mathematics",
		"      Teacher: D. Dimitrova",
		"      Topic: Fractions",
		"      📝 Homework: p. 44",
		"   2. [09:00-09:45] English",
		"      Teacher: N/A",
		"",
		"👤 Georgi Petrov",
		strings.Repeat("-", 40),
		"   (No classes scheduled)",
		"",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Schedule(report) })
	require.Equal(t, want, got)
}

func TestSchedule_StudentAccountOwnLessons(t *testing.T) {
	report := &models.ScheduleReport{
		Date:           "2026-02-10",
		StudentAccount: true,
		MySchedule: []models.ScheduleHour{
			{SchoolHour: 1, FromTime: "08:00", ToTime: "08:45", CourseName: "Mathematics", TeacherName: "I. Ivanova", HomeworkText: "ex. 5"},
			{CourseName: "Sport"},
		},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Schedule for 2026-02-10",
		strings.Repeat("=", 60),
		"",
		"📅 My Schedule:",
		"",
		"   1. [08:00-08:45] Mathematics",
		"      Teacher: I. Ivanova",
		"      📝 Homework: ex. 5",
		"   ?. [?-?] Sport",
		"      Teacher: N/A",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Schedule(report) })
	require.Equal(t, want, got)
}

func TestSchedule_StudentAccountWithoutLessonsStaysQuiet(t *testing.T) {
	report := &models.ScheduleReport{
		Date:           "2026-02-10",
		StudentAccount: true,
		MySchedule:     []models.ScheduleHour{},
	}

	got := renderText(func(r *Text) { r.Schedule(report) })

	assert.NotContains(t, got, "My Schedule")
	assert.Contains(t, got, "SHKOLO - Schedule for 2026-02-10")
}

func TestGrades_AveragesNumericTermsAndMapsIcons(t *testing.T) {
	report := &models.GradesReport{
		Sections: []models.StudentGrades{{
			Student: models.Pupil{ID: 101, Name: "Maria Petrova"},
			Courses: []models.CourseReport{
				{
					Subject:     "Mathematics",
					Term1Grades: []string{"5", "6"},
					Term1Final:  "6",
					Term2Grades: []string{"starO", "smile"},
					Annual:      "6",
				},
				{
					Subject:     "Sport",
					Term1Grades: []string{"6"},
				},
			},
		}},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Grades Summary",
		strings.Repeat("=", 60),
		"",
		"👤 Maria Petrova",
		strings.Repeat("=", 40),
		"",
		"   📚 Mathematics",
		"      Term 1: 5, 6 (avg: 5.50)",
		"      Term 1 Final: 6",
		"      Term 2: ⭐ 😊",
		"      Annual: 6",
		"   📚 Sport",
		"      Term 1: 6 (avg: 6.00)",
		"",
		strings.Repeat("-", 60),
		"",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Grades(report) })
	require.Equal(t, want, got)
}

func TestGrades_EmptyCoursesAndStudentAccount(t *testing.T) {
	empty := &models.GradesReport{
		Sections: []models.StudentGrades{{
			Student: models.Pupil{ID: 101, Name: "Georgi Petrov"},
		}},
	}
	got := renderText(func(r *Text) { r.Grades(empty) })
	assert.Contains(t, got, "   No grades found\n")

	student := &models.GradesReport{StudentAccount: true}
	got = renderText(func(r *Text) { r.Grades(student) })
	assert.Contains(t, got, "No children found (student accounts not yet supported for grades)\n")
}

func TestAbsences_RendersTotals(t *testing.T) {
	report := &models.AbsencesReport{
		Sections: []models.StudentAbsences{{
			Student: models.Pupil{ID: 101, Name: "Maria Petrova"},
			Absences: []models.Absence{
				{Date: "20.02.2026", Hour: 3, Subject: "Mathematics", Comment: "late"},
				{Date: "18.02.2026", Hour: 1, Subject: "English", Excused: true},
			},
		}},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Absences",
		strings.Repeat("=", 60),
		"",
		"👤 Maria Petrova",
		strings.Repeat("=", 40),
		"",
		"   [20.02.2026] Hour 3: Mathematics (Unexcused)",
		"   📝 late",
		"",
		"   [18.02.2026] Hour 1: English (Excused)",
		"",
		"   Excused: 1, Unexcused: 1",
		"",
		strings.Repeat("-", 60),
		"",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Absences(report) })
	require.Equal(t, want, got)
}

func TestAbsences_StudentAccountUnsupported(t *testing.T) {
	report := &models.AbsencesReport{StudentAccount: true}

	got := renderText(func(r *Text) { r.Absences(report) })

	assert.Contains(t, got, "No children found (student accounts not yet supported for absences)\n")
}

func TestSummary_CondensedPerPupilView(t *testing.T) {
	report := &models.SummaryReport{
		Sections: []models.StudentSummary{{
			Student: models.Pupil{ID: 101, Name: "Maria Petrova"},
			TodaySchedule: []models.ScheduleHour{
				{SchoolHour: 1, FromTime: "08:00", ToTime: "08:45", CourseName: "Mathematics"},
			},
			RecentHomework: []models.Homework{
				{Date: "20.02.2026", Subject: "Mathematics"},
			},
			GradesCount: 4,
		}},
		Cache: models.CacheInfo{Cached: true},
	}

	want := strings.Join([]string{
		strings.Repeat("=", 60),
		"SHKOLO - Summary",
		strings.Repeat("=", 60),
		"(cached)",
		"",
		"👤 Maria Petrova",
		strings.Repeat("=", 40),
		"",
		"📅 Today's Schedule:",
		"   1. [08:00-08:45] Mathematics",
		"",
		"📝 Recent Homework:",
		"   [20.02.2026] Mathematics",
		"",
		"📊 Courses with grades: 4",
		"",
		strings.Repeat("-", 60),
		"",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Summary(report) })
	require.Equal(t, want, got)
}

func TestSummary_EmptyDay(t *testing.T) {
	report := &models.SummaryReport{
		Sections: []models.StudentSummary{{
			Student: models.Pupil{ID: 101, Name: "Georgi Petrov"},
		}},
	}

	got := renderText(func(r *Text) { r.Summary(report) })

	assert.Contains(t, got, "   (No classes scheduled)\n")
	assert.Contains(t, got, "   (No homework)\n")
	assert.Contains(t, got, "📊 Courses with grades: 0\n")
}

func TestNotifications_MarkersAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 140)
	items := []models.Notification{
		{Title: "New grade", Body: "You received a new grade", Date: "2026-02-20 14:30:00"},
		{Title: "Absence recorded", Read: true},
		{Title: "Newsletter", Body: long},
	}

	want := strings.Join([]string{
		"=== Notifications ===",
		"",
		"[Unread] New grade",
		"  You received a new grade...",
		"  Date: 20.02.2026 14:30",
		strings.Repeat("-", 40),
		"[Read] Absence recorded",
		"  Date: N/A",
		strings.Repeat("-", 40),
		"[Unread] Newsletter",
		"  " + strings.Repeat("x", 100) + "...",
		"  Date: N/A",
		strings.Repeat("-", 40),
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Notifications(items) })
	require.Equal(t, want, got)
}

func TestNotifications_EmptyFeed(t *testing.T) {
	got := renderText(func(r *Text) { r.Notifications(nil) })
	assert.Equal(t, "No notifications\n", got)
}

func TestEvents_GlobalListAndInvitations(t *testing.T) {
	report := &models.EventsReport{
		Events: []models.Event{
			{Title: "Spring concert", StartDate: "2026-03-15 18:00:00", TypeName: "Celebration", Description: "School hall"},
			{Title: "Math exam", StartDate: "2026-03-20 08:00:00", IsTest: true},
		},
		Sections: []models.StudentEvents{
			{Student: models.Pupil{ID: 101, Name: "Maria Petrova"}, Events: []models.Event{{Title: "Class photo"}}},
			{Student: models.Pupil{ID: 102, Name: "Georgi Petrov"}},
		},
	}

	want := strings.Join([]string{
		"=== Events ===",
		"",
		"Spring concert",
		"  Date: 15.03.2026 18:00",
		"  Type: Celebration",
		"  School hall",
		strings.Repeat("-", 40),
		"Math exam [test]",
		"  Date: 20.03.2026 08:00",
		strings.Repeat("-", 40),
		"",
		"👤 Maria Petrova",
		"Class photo",
		"  Date: N/A",
		strings.Repeat("-", 40),
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Events(report) })
	require.Equal(t, want, got)
}

func TestEvents_EmptyList(t *testing.T) {
	got := renderText(func(r *Text) { r.Events(&models.EventsReport{}) })

	want := strings.Join([]string{
		"=== Events ===",
		"",
		"No events",
	}, "\n") + "\n"
	require.Equal(t, want, got)
}

func TestRaw_PrettyPrintsJSONBody(t *testing.T) {
	resp := &models.RawResponse{Status: 200, Body: []byte(`{"ok":true}`)}

	want := strings.Join([]string{
		"Status: 200",
		"{",
		`  "ok": true`,
		"}",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Raw(resp) })
	require.Equal(t, want, got)
}

func TestRaw_PassesThroughNonJSONBody(t *testing.T) {
	resp := &models.RawResponse{Status: 502, Body: []byte("Bad Gateway")}

	got := renderText(func(r *Text) { r.Raw(resp) })

	require.Equal(t, "Status: 502\nBad Gateway\n", got)
}

func TestLogin_PrintsUsersAndRoles(t *testing.T) {
	ua := &models.UsersAndYears{Users: []models.User{
		{Names: "Ivan Petrov", Roles: []models.UserRole{{RoleID: 1, RoleName: "parent"}, {RoleID: 3, RoleName: "teacher"}}},
		{Names: ""},
	}}

	want := strings.Join([]string{
		"Logged in successfully!",
		"  User: Ivan Petrov",
		"  Roles: parent, teacher",
		"  User: Unknown",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Login(ua, false) })
	require.Equal(t, want, got)
}

func TestLogin_GoogleVariant(t *testing.T) {
	got := renderText(func(r *Text) { r.Login(nil, true) })
	require.Equal(t, "Logged in with Google successfully!\n", got)
}

func TestLogout_Message(t *testing.T) {
	got := renderText(func(r *Text) { r.Logout() })
	require.Equal(t, "Logged out successfully!\n", got)
}

func TestImportToken_PrintsIdentity(t *testing.T) {
	imp := &session.ImportedSession{Names: "Maria Petrova", UserID: "4242", Roles: "1"}

	want := strings.Join([]string{
		"Token imported successfully!",
		"User: Maria Petrova",
		"User ID: 4242",
		"Role ID: 1",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.ImportToken(imp) })
	require.Equal(t, want, got)
}

func TestImportToken_MinimalManifest(t *testing.T) {
	got := renderText(func(r *Text) { r.ImportToken(&session.ImportedSession{}) })

	require.Equal(t, "Token imported successfully!\nUser: Unknown\n", got)
}

func TestStatus_Authenticated(t *testing.T) {
	st := &models.AuthStatus{
		Authenticated: true,
		Users:         []models.User{{Names: "Ivan Petrov"}},
		SchoolYear:    19,
		TokenExpiry:   time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC),
	}

	want := strings.Join([]string{
		"Status: Authenticated",
		"User: Ivan Petrov",
		"School Year ID: 19",
		"Token expires: 23.08.2026 10:30",
		"",
		"Cache directory: /home/u/.shkolo",
		"Cache TTL: 3600 seconds",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Status(st, "/home/u/.shkolo", time.Hour) })
	require.Equal(t, want, got)
}

func TestStatus_NotAuthenticated(t *testing.T) {
	want := strings.Join([]string{
		"Status: Not authenticated",
		"",
		"Run 'shkolo login' or 'shkolo import-token' to authenticate",
	}, "\n") + "\n"

	got := renderText(func(r *Text) { r.Status(&models.AuthStatus{}, "/home/u/.shkolo", time.Hour) })
	require.Equal(t, want, got)
}
