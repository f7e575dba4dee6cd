// Package render writes the report output: the human-readable text
// views and the machine-readable JSON envelope.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/models"
)

const (
	// listLimit caps every rendered list; the homework and absences
	// views add a trailer with the hidden count.
	listLimit = 20
	// textLimit caps free-text fields like notification bodies.
	textLimit = 100

	bannerWidth = 60
)

// Text renders reports as the plain terminal views.
type Text struct {
	w io.Writer
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// banner writes the report header with the cache age marker when the
// data came from the local cache.
func (t *Text) banner(title string, cache models.CacheInfo) {
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(t.w, line)
	fmt.Fprintln(t.w, title)
	fmt.Fprintln(t.w, line)
	if cache.Cached {
		if cache.Age != "" {
			fmt.Fprintf(t.w, "(cached %s)\n", cache.Age)
		} else {
			fmt.Fprintln(t.w, "(cached)")
		}
	}
	fmt.Fprintln(t.w)
}

// Homework renders the homework report: one section per pupil, newest
// entries first. Student accounts get the schedule and task fallback
// instead of per-pupil sections.
func (t *Text) Homework(r *models.HomeworkReport) {
	t.banner("SHKOLO - Homework", r.Cache)

	if r.StudentAccount {
		fmt.Fprintln(t.w, "No children found. This might be a student account.")
		t.fallback(r.Fallback)
		return
	}

	for _, section := range r.Sections {
		fmt.Fprintf(t.w, "👤 %s\n", section.Student.Name)
		fmt.Fprintln(t.w, strings.Repeat("=", 40))

		if len(section.Homework) == 0 {
			fmt.Fprintln(t.w, "\n   No homework found.")
		} else {
			shown := section.Homework
			if len(shown) > listLimit {
				shown = shown[:listLimit]
			}
			for _, hw := range shown {
				due := ""
				if hw.DueDate != "" {
					due = " → Due: " + hw.DueDate
				}
				fmt.Fprintf(t.w, "\n   [%s] %s%s\n", orNA(hw.Date), hw.Subject, due)
				fmt.Fprintf(t.w, "   📝 %s\n", hw.Text)
			}
			if extra := len(section.Homework) - listLimit; extra > 0 {
				fmt.Fprintf(t.w, "\n   ... and %d more homework entries\n", extra)
			}
		}

		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, strings.Repeat("-", bannerWidth))
		fmt.Fprintln(t.w)
	}

	fmt.Fprintln(t.w, "✅ Done")
}

// fallback renders what a pupil-less account still sees: its own
// schedule for today and the first ten assigned tasks.
func (t *Text) fallback(f *models.StudentFallback) {
	if f == nil {
		return
	}

	if len(f.TodaySchedule) > 0 {
		fmt.Fprintln(t.w, "\n📅 Today's Schedule:")
		for _, hour := range f.TodaySchedule {
			fmt.Fprintf(t.w, "   %s. %s\n", hourLabel(hour), hour.Subject())
			if hour.HomeworkText != "" {
				fmt.Fprintf(t.w, "      📝 HOMEWORK: %s\n", hour.HomeworkText)
			}
		}
	}

	if len(f.Tasks) > 0 {
		fmt.Fprintln(t.w, "\n📋 Assigned Tasks:")
		tasks := f.Tasks
		if len(tasks) > 10 {
			tasks = tasks[:10]
		}
		for _, task := range tasks {
			fmt.Fprintf(t.w, "   • %s\n", task.DisplayTitle())
			if task.Deadline != "" {
				fmt.Fprintf(t.w, "     Due: %s\n", task.Deadline)
			}
		}
	}
}

// Schedule renders the schedule report for one date. Student accounts
// get their own lessons under a My Schedule heading.
func (t *Text) Schedule(r *models.ScheduleReport) {
	t.banner("SHKOLO - Schedule for "+r.Date, r.Cache)

	if r.StudentAccount {
		if len(r.MySchedule) == 0 {
			return
		}
		fmt.Fprintln(t.w, "📅 My Schedule:")
		fmt.Fprintln(t.w)
		for _, hour := range r.MySchedule {
			fmt.Fprintf(t.w, "   %s. [%s-%s] %s\n", hourLabel(hour), orQuestion(hour.FromTime), orQuestion(hour.ToTime), hour.Subject())
			fmt.Fprintf(t.w, "      Teacher: %s\n", orNA(hour.TeacherName))
			if hour.HomeworkText != "" {
				fmt.Fprintf(t.w, "      📝 Homework: %s\n", hour.HomeworkText)
			}
		}
		return
	}

	for _, section := range r.Sections {
		fmt.Fprintf(t.w, "👤 %s\n", section.Student.Name)
		fmt.Fprintln(t.w, strings.Repeat("-", 40))

		if len(section.Hours) == 0 {
			fmt.Fprintln(t.w, "   (No classes scheduled)")
		}
		for _, hour := range section.Hours {
			fmt.Fprintf(t.w, "   %s. [%s-%s] %s\n", hourLabel(hour), orQuestion(hour.FromTime), orQuestion(hour.ToTime), hour.Subject())
			fmt.Fprintf(t.w, "      Teacher: %s\n", orNA(hour.TeacherName))
			if hour.Topic != "" {
				fmt.Fprintf(t.w, "      Topic: %s\n", hour.Topic)
			}
			if hour.HomeworkText != "" {
				fmt.Fprintf(t.w, "      📝 Homework: %s\n", hour.HomeworkText)
			}
		}
		fmt.Fprintln(t.w)
	}
}

// Grades renders the grades report. A term line shows the comma-joined
// grades with their average when every grade parses as a number, and
// the space-joined icon renderings otherwise.
func (t *Text) Grades(r *models.GradesReport) {
	t.banner("SHKOLO - Grades Summary", r.Cache)

	if r.StudentAccount {
		fmt.Fprintln(t.w, "No children found (student accounts not yet supported for grades)")
		return
	}

	for _, section := range r.Sections {
		fmt.Fprintf(t.w, "👤 %s\n", section.Student.Name)
		fmt.Fprintln(t.w, strings.Repeat("=", 40))

		if len(section.Courses) == 0 {
			fmt.Fprintln(t.w, "   No grades found")
		} else {
			fmt.Fprintln(t.w)
			for _, course := range section.Courses {
				fmt.Fprintf(t.w, "   📚 %s\n", course.Subject)
				t.termLine("Term 1", course.Term1Grades)
				if course.Term1Final != "" {
					fmt.Fprintf(t.w, "      Term 1 Final: %s\n", course.Term1Final)
				}
				t.termLine("Term 2", course.Term2Grades)
				if course.Term2Final != "" {
					fmt.Fprintf(t.w, "      Term 2 Final: %s\n", course.Term2Final)
				}
				if course.Annual != "" {
					fmt.Fprintf(t.w, "      Annual: %s\n", course.Annual)
				}
			}
		}

		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, strings.Repeat("-", bannerWidth))
		fmt.Fprintln(t.w)
	}
}

func (t *Text) termLine(label string, grades []string) {
	if len(grades) == 0 {
		return
	}
	if avg, ok := models.GradeAverage(grades); ok {
		fmt.Fprintf(t.w, "      %s: %s (avg: %.2f)\n", label, strings.Join(grades, ", "), avg)
		return
	}
	icons := make([]string, len(grades))
	for i, g := range grades {
		icons[i] = models.GradeIcon(g)
	}
	fmt.Fprintf(t.w, "      %s: %s\n", label, strings.Join(icons, " "))
}

// Absences renders the absences report with per-pupil excused and
// unexcused totals.
func (t *Text) Absences(r *models.AbsencesReport) {
	t.banner("SHKOLO - Absences", r.Cache)

	if r.StudentAccount {
		fmt.Fprintln(t.w, "No children found (student accounts not yet supported for absences)")
		return
	}

	for _, section := range r.Sections {
		fmt.Fprintf(t.w, "👤 %s\n", section.Student.Name)
		fmt.Fprintln(t.w, strings.Repeat("=", 40))

		if len(section.Absences) == 0 {
			fmt.Fprintln(t.w, "\n   No absences found.")
		} else {
			shown := section.Absences
			if len(shown) > listLimit {
				shown = shown[:listLimit]
			}
			for _, a := range shown {
				status := "Unexcused"
				if a.Excused {
					status = "Excused"
				}
				fmt.Fprintf(t.w, "\n   [%s] Hour %d: %s (%s)\n", orNA(a.Date), a.Hour, a.Subject, status)
				if a.Comment != "" {
					fmt.Fprintf(t.w, "   📝 %s\n", a.Comment)
				}
			}
			if extra := len(section.Absences) - listLimit; extra > 0 {
				fmt.Fprintf(t.w, "\n   ... and %d more absences\n", extra)
			}

			var excused int
			for _, a := range section.Absences {
				if a.Excused {
					excused++
				}
			}
			fmt.Fprintf(t.w, "\n   Excused: %d, Unexcused: %d\n", excused, len(section.Absences)-excused)
		}

		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, strings.Repeat("-", bannerWidth))
		fmt.Fprintln(t.w)
	}
}

// Summary renders the condensed per-pupil day view.
func (t *Text) Summary(r *models.SummaryReport) {
	t.banner("SHKOLO - Summary", r.Cache)

	for _, section := range r.Sections {
		fmt.Fprintf(t.w, "👤 %s\n", section.Student.Name)
		fmt.Fprintln(t.w, strings.Repeat("=", 40))

		fmt.Fprintln(t.w, "\n📅 Today's Schedule:")
		if len(section.TodaySchedule) == 0 {
			fmt.Fprintln(t.w, "   (No classes scheduled)")
		}
		for _, hour := range section.TodaySchedule {
			fmt.Fprintf(t.w, "   %s. [%s-%s] %s\n", hourLabel(hour), orQuestion(hour.FromTime), orQuestion(hour.ToTime), hour.Subject())
		}

		fmt.Fprintln(t.w, "\n📝 Recent Homework:")
		if len(section.RecentHomework) == 0 {
			fmt.Fprintln(t.w, "   (No homework)")
		}
		for _, hw := range section.RecentHomework {
			fmt.Fprintf(t.w, "   [%s] %s\n", orNA(hw.Date), hw.Subject)
		}

		fmt.Fprintf(t.w, "\n📊 Courses with grades: %d\n", section.GradesCount)

		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, strings.Repeat("-", bannerWidth))
		fmt.Fprintln(t.w)
	}
}

// Notifications renders one page of the notification feed.
func (t *Text) Notifications(items []models.Notification) {
	if len(items) == 0 {
		fmt.Fprintln(t.w, "No notifications")
		return
	}

	fmt.Fprintln(t.w, "=== Notifications ===")
	fmt.Fprintln(t.w)

	shown := items
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	for _, n := range shown {
		read := "Unread"
		if n.Read {
			read = "Read"
		}
		fmt.Fprintf(t.w, "[%s] %s\n", read, n.Title)
		if n.Body != "" {
			fmt.Fprintf(t.w, "  %s...\n", Clip(n.Body, textLimit))
		}
		fmt.Fprintf(t.w, "  Date: %s\n", FormatDate(n.Date))
		fmt.Fprintln(t.w, strings.Repeat("-", 40))
	}
}

// Events renders the school-wide event list followed by each pupil's
// invitations.
func (t *Text) Events(r *models.EventsReport) {
	fmt.Fprintln(t.w, "=== Events ===")
	fmt.Fprintln(t.w)

	if len(r.Events) == 0 {
		fmt.Fprintln(t.w, "No events")
	}
	shown := r.Events
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	for _, e := range shown {
		t.event(e)
	}

	for _, section := range r.Sections {
		if len(section.Events) == 0 {
			continue
		}
		fmt.Fprintf(t.w, "\n👤 %s\n", section.Student.Name)
		invitations := section.Events
		if len(invitations) > listLimit {
			invitations = invitations[:listLimit]
		}
		for _, e := range invitations {
			t.event(e)
		}
	}
}

func (t *Text) event(e models.Event) {
	title := e.Title
	if e.IsTest {
		title += " [test]"
	}
	fmt.Fprintln(t.w, title)
	fmt.Fprintf(t.w, "  Date: %s\n", FormatDate(e.StartDate))
	if e.TypeName != "" {
		fmt.Fprintf(t.w, "  Type: %s\n", e.TypeName)
	}
	if e.Description != "" {
		fmt.Fprintf(t.w, "  %s\n", Clip(e.Description, textLimit))
	}
	fmt.Fprintln(t.w, strings.Repeat("-", 40))
}

// Raw prints the HTTP status and the response body, pretty-printed
// when it is valid JSON.
func (t *Text) Raw(resp *models.RawResponse) {
	fmt.Fprintf(t.w, "Status: %d\n", resp.Status)

	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Body, "", "  "); err != nil {
		fmt.Fprintf(t.w, "%s\n", resp.Body)
		return
	}
	fmt.Fprintln(t.w, buf.String())
}

// Login reports a successful sign-in with the account names and roles.
func (t *Text) Login(ua *models.UsersAndYears, google bool) {
	if google {
		fmt.Fprintln(t.w, "Logged in with Google successfully!")
	} else {
		fmt.Fprintln(t.w, "Logged in successfully!")
	}
	if ua == nil {
		return
	}

	for _, user := range ua.Users {
		name := user.Names
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(t.w, "  User: %s\n", name)
		if len(user.Roles) > 0 {
			roles := make([]string, len(user.Roles))
			for i, role := range user.Roles {
				roles[i] = role.RoleName
			}
			fmt.Fprintf(t.w, "  Roles: %s\n", strings.Join(roles, ", "))
		}
	}
}

// Logout reports the cleared session.
func (t *Text) Logout() {
	fmt.Fprintln(t.w, "Logged out successfully!")
}

// ImportToken reports the identity imported from the iOS app storage.
func (t *Text) ImportToken(imp *session.ImportedSession) {
	fmt.Fprintln(t.w, "Token imported successfully!")

	names := imp.Names
	if names == "" {
		names = "Unknown"
	}
	fmt.Fprintf(t.w, "User: %s\n", names)
	if imp.UserID != "" {
		fmt.Fprintf(t.w, "User ID: %s\n", imp.UserID)
	}
	if imp.Roles != "" {
		fmt.Fprintf(t.w, "Role ID: %s\n", imp.Roles)
	}
}

// Status reports the authentication state plus the cache location and
// policy.
func (t *Text) Status(st *models.AuthStatus, cacheDir string, ttl time.Duration) {
	if !st.Authenticated {
		fmt.Fprintln(t.w, "Status: Not authenticated")
		fmt.Fprintln(t.w)
		fmt.Fprintln(t.w, "Run 'shkolo login' or 'shkolo import-token' to authenticate")
		return
	}

	fmt.Fprintln(t.w, "Status: Authenticated")
	for _, user := range st.Users {
		name := user.Names
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(t.w, "User: %s\n", name)
	}
	if st.SchoolYear != 0 {
		fmt.Fprintf(t.w, "School Year ID: %d\n", st.SchoolYear)
	}
	if !st.TokenExpiry.IsZero() {
		fmt.Fprintf(t.w, "Token expires: %s\n", st.TokenExpiry.Format("02.01.2006 15:04"))
	}
	fmt.Fprintln(t.w)
	fmt.Fprintf(t.w, "Cache directory: %s\n", cacheDir)
	fmt.Fprintf(t.w, "Cache TTL: %d seconds\n", int(ttl.Seconds()))
}

// hourLabel renders the school hour number, with ? for a missing one.
func hourLabel(h models.ScheduleHour) string {
	if h.SchoolHour == 0 {
		return "?"
	}
	return strconv.FormatInt(h.SchoolHour.Int64(), 10)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orQuestion(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
