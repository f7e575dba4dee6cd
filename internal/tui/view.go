package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x1024/shkolo-cli/internal/render"
	"github.com/x1024/shkolo-cli/models"
)

const listLimit = 20

func (m dashboardModel) View() string {
	title := titleStyle.Render("Shkolo")
	if m.busy() {
		title += "  " + m.spinner.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.pupilsPane()),
		m.contentPane(),
	)

	return appStyle.Render(title + "\n\n" + body + "\n\n" + m.footer())
}

func (m dashboardModel) pupilsPane() string {
	lines := []string{titleStyle.Render("Pupils"), ""}
	switch {
	case m.loadingStudents:
		lines = append(lines, "Loading...")
	case len(m.students) == 0:
		lines = append(lines, "No pupils", faintStyle.Render("(student account)"))
	default:
		for i, s := range m.students {
			if i == m.studentIdx {
				lines = append(lines, selectedStyle.Render("> "+s.Name))
			} else {
				lines = append(lines, "  "+s.Name)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m dashboardModel) contentPane() string {
	return m.tabsRow() + "\n\n" + m.tabContent()
}

func (m dashboardModel) tabsRow() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d:%s", int(t)+1, t)
		if t == m.activeTab {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, inactiveTab.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m dashboardModel) tabContent() string {
	if m.loadingTab {
		return "Loading..."
	}
	if m.activeTab == tabNotifications {
		return notificationsView(m.notifications)
	}
	student, ok := m.currentStudent()
	if !ok {
		return faintStyle.Render("No pupil selected")
	}
	switch m.activeTab {
	case tabHomework:
		return m.homeworkView(m.homework[student.ID])
	case tabGrades:
		return gradesView(m.grades[student.ID])
	case tabSchedule:
		return scheduleView(m.schedule[student.ID])
	case tabAbsences:
		return absencesView(m.absences[student.ID])
	}
	return ""
}

func (m dashboardModel) homeworkView(items []models.Homework) string {
	if len(items) == 0 {
		return "No homework found."
	}
	var b strings.Builder
	for i, hw := range items {
		if i >= listLimit {
			b.WriteString(faintStyle.Render(fmt.Sprintf("... and %d more", len(items)-listLimit)) + "\n")
			break
		}
		line := fmt.Sprintf("[%s] %s", orNA(hw.Date), hw.Subject)
		if hw.DueDate != "" {
			line += "  due " + hw.DueDate
		}
		if i == m.entryIdx {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if m.entryIdx < len(items) && items[m.entryIdx].Text != "" {
		b.WriteString("\n" + render.Clip(items[m.entryIdx].Text, 200))
	}
	return strings.TrimRight(b.String(), "\n")
}

func gradesView(courses []models.CourseReport) string {
	if len(courses) == 0 {
		return "No grades found."
	}
	var b strings.Builder
	for _, c := range courses {
		b.WriteString(titleStyle.Render(c.Subject) + "\n")
		if line := termRow("Term 1", c.Term1Grades, c.Term1Final); line != "" {
			b.WriteString(line + "\n")
		}
		if line := termRow("Term 2", c.Term2Grades, c.Term2Final); line != "" {
			b.WriteString(line + "\n")
		}
		if c.Annual != "" {
			b.WriteString("  Annual: " + colorGrade(c.Annual) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func termRow(label string, grades []string, final string) string {
	if len(grades) == 0 && final == "" {
		return ""
	}
	line := "  " + label + ":"
	if len(grades) > 0 {
		parts := make([]string, 0, len(grades))
		for _, g := range grades {
			parts = append(parts, colorGrade(g))
		}
		line += " " + strings.Join(parts, " ")
	}
	if avg, ok := models.GradeAverage(grades); ok {
		style := lipgloss.NewStyle().Foreground(averageColor(avg))
		line += "  " + style.Render(fmt.Sprintf("(avg %.2f)", avg))
	}
	if final != "" {
		line += "  final " + colorGrade(final)
	}
	return line
}

func colorGrade(g string) string {
	return lipgloss.NewStyle().Foreground(gradeColor(g)).Render(g)
}

func scheduleView(hours []models.ScheduleHour) string {
	if len(hours) == 0 {
		return "No classes today."
	}
	var b strings.Builder
	for _, h := range hours {
		line := fmt.Sprintf("%s. [%s-%s] %s",
			hourLabel(h.SchoolHour.Int64()), orQuestion(h.FromTime), orQuestion(h.ToTime), h.Subject())
		if h.TeacherName != "" {
			line += "  " + faintStyle.Render(h.TeacherName)
		}
		b.WriteString(line + "\n")
		if h.HomeworkText != "" {
			b.WriteString("     " + faintStyle.Render("HW: "+render.Clip(h.HomeworkText, 100)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func absencesView(items []models.Absence) string {
	if len(items) == 0 {
		return "No absences."
	}
	var b strings.Builder
	var excused, unexcused int
	for i, a := range items {
		if a.Excused {
			excused++
		} else {
			unexcused++
		}
		if i >= listLimit {
			continue
		}
		marker := absenceStyle.Render("Unexcused")
		if a.Excused {
			marker = excusedStyle.Render("Excused")
		}
		b.WriteString(fmt.Sprintf("[%s] Hour %d: %s (%s)\n", orNA(a.Date), a.Hour, a.Subject, marker))
	}
	if len(items) > listLimit {
		b.WriteString(faintStyle.Render(fmt.Sprintf("... and %d more", len(items)-listLimit)) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%d excused, %d unexcused", excused, unexcused))
	return b.String()
}

func notificationsView(items []models.Notification) string {
	if len(items) == 0 {
		return "No notifications."
	}
	var b strings.Builder
	for i, n := range items {
		if i >= listLimit {
			b.WriteString(faintStyle.Render(fmt.Sprintf("... and %d more", len(items)-listLimit)) + "\n")
			break
		}
		marker := unreadStyle.Render("[Unread]")
		if n.Read {
			marker = faintStyle.Render("[Read]")
		}
		line := marker + " " + n.Title
		if n.Date != "" {
			line += "  " + faintStyle.Render(render.FormatDate(n.Date))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) footer() string {
	help := make([]string, 0, 6)
	for _, b := range shortHelp() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	line := helpStyle.Render(strings.Join(help, " · "))

	switch {
	case m.errMsg != "":
		return errorStyle.Render("Error: "+m.errMsg) + "\n" + line
	case m.status != "":
		return statusStyle.Render(m.status) + "\n" + line
	}
	return line
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

func hourLabel(hour int64) string {
	if hour == 0 {
		return "?"
	}
	return fmt.Sprintf("%d", hour)
}
