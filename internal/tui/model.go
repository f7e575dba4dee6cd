package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/service"
	"github.com/x1024/shkolo-cli/models"
)

type tab int

const (
	tabHomework tab = iota
	tabGrades
	tabSchedule
	tabAbsences
	tabNotifications
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabHomework:
		return "Homework"
	case tabGrades:
		return "Grades"
	case tabSchedule:
		return "Schedule"
	case tabAbsences:
		return "Absences"
	case tabNotifications:
		return "Notifications"
	}
	return "?"
}

func (t tab) next() tab { return (t + 1) % tabCount }

func (t tab) prev() tab { return (t + tabCount - 1) % tabCount }

type dashboardModel struct {
	ctx      context.Context
	services *service.Services
	log      *logger.Logger

	spinner         spinner.Model
	loadingStudents bool
	loadingTab      bool

	students   []models.Pupil
	studentIdx int
	activeTab  tab
	entryIdx   int

	homework      map[int64][]models.Homework
	grades        map[int64][]models.CourseReport
	schedule      map[int64][]models.ScheduleHour
	absences      map[int64][]models.Absence
	notifications []models.Notification
	notifsLoaded  bool

	status string
	errMsg string

	width  int
	height int
}

func newDashboard(ctx context.Context, services *service.Services, log *logger.Logger) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{
		ctx:             ctx,
		services:        services,
		log:             log,
		spinner:         s,
		loadingStudents: true,
		homework:        map[int64][]models.Homework{},
		grades:          map[int64][]models.CourseReport{},
		schedule:        map[int64][]models.ScheduleHour{},
		absences:        map[int64][]models.Absence{},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadStudents())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case studentsLoadedMsg:
		m.loadingStudents = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.students = msg.students
		m.studentIdx = 0
		if len(m.students) == 0 {
			return m, nil
		}
		return m.startLoad(false)

	case tabDataMsg:
		m.loadingTab = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		switch msg.tab {
		case tabHomework:
			m.homework[msg.studentID] = msg.homework
			if m.entryIdx >= len(msg.homework) {
				m.entryIdx = 0
			}
		case tabGrades:
			m.grades[msg.studentID] = msg.grades
		case tabSchedule:
			m.schedule[msg.studentID] = msg.hours
		case tabAbsences:
			m.absences[msg.studentID] = msg.absences
		case tabNotifications:
			m.notifications = msg.notifications
			m.notifsLoaded = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.down):
		if m.studentIdx < len(m.students)-1 {
			m.studentIdx++
			m.entryIdx = 0
			return m.startLoad(false)
		}
		return m, nil

	case key.Matches(msg, keys.up):
		if m.studentIdx > 0 {
			m.studentIdx--
			m.entryIdx = 0
			return m.startLoad(false)
		}
		return m, nil

	case key.Matches(msg, keys.nextTab):
		m.activeTab = m.activeTab.next()
		return m.startLoad(false)

	case key.Matches(msg, keys.prevTab):
		m.activeTab = m.activeTab.prev()
		return m.startLoad(false)

	case key.Matches(msg, keys.right):
		if m.activeTab == tabHomework {
			if items := m.currentHomework(); m.entryIdx < len(items)-1 {
				m.entryIdx++
			}
		}
		return m, nil

	case key.Matches(msg, keys.left):
		if m.activeTab == tabHomework && m.entryIdx > 0 {
			m.entryIdx--
		}
		return m, nil

	case key.Matches(msg, keys.refresh):
		return m.startLoad(true)

	case key.Matches(msg, keys.copyText):
		return m.copyHomework()
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5":
		m.activeTab = tab(msg.String()[0] - '1')
		return m.startLoad(false)
	}
	return m, nil
}

// startLoad kicks off the fetch for the active tab unless its data is
// already present. refresh forces a refetch past the cache.
func (m dashboardModel) startLoad(refresh bool) (tea.Model, tea.Cmd) {
	if m.activeTab != tabNotifications {
		if _, ok := m.currentStudent(); !ok {
			return m, nil
		}
	}
	if !refresh && m.tabLoaded() {
		return m, nil
	}
	m.loadingTab = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadTab(refresh))
}

func (m dashboardModel) tabLoaded() bool {
	if m.activeTab == tabNotifications {
		return m.notifsLoaded
	}
	student, ok := m.currentStudent()
	if !ok {
		return true
	}
	switch m.activeTab {
	case tabHomework:
		_, ok = m.homework[student.ID]
	case tabGrades:
		_, ok = m.grades[student.ID]
	case tabSchedule:
		_, ok = m.schedule[student.ID]
	case tabAbsences:
		_, ok = m.absences[student.ID]
	}
	return ok
}

func (m dashboardModel) busy() bool {
	return m.loadingStudents || m.loadingTab
}

func (m dashboardModel) currentStudent() (models.Pupil, bool) {
	if len(m.students) == 0 || m.studentIdx < 0 || m.studentIdx >= len(m.students) {
		return models.Pupil{}, false
	}
	return m.students[m.studentIdx], true
}

func (m dashboardModel) currentHomework() []models.Homework {
	student, ok := m.currentStudent()
	if !ok {
		return nil
	}
	return m.homework[student.ID]
}

func (m dashboardModel) copyHomework() (tea.Model, tea.Cmd) {
	if m.activeTab != tabHomework {
		return m, nil
	}
	items := m.currentHomework()
	if len(items) == 0 || m.entryIdx >= len(items) {
		return m, nil
	}
	if err := clipboard.WriteAll(items[m.entryIdx].Text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return m, nil
	}
	m.status = "Homework copied to clipboard"
	m.errMsg = ""
	return m, nil
}

func (m dashboardModel) cmdLoadStudents() tea.Cmd {
	ctx, diary := m.ctx, m.services.Diary
	return func() tea.Msg {
		students, _, err := diary.Students(ctx, service.FetchOptions{})
		return studentsLoadedMsg{students: students, err: err}
	}
}

func (m dashboardModel) cmdLoadTab(refresh bool) tea.Cmd {
	ctx, services, log := m.ctx, m.services, m.log
	active := m.activeTab
	opts := service.FetchOptions{Refresh: refresh}

	if active == tabNotifications {
		return func() tea.Msg {
			items, err := services.Inbox.Notifications(ctx, 1)
			return tabDataMsg{tab: active, notifications: items, err: err}
		}
	}

	student, ok := m.currentStudent()
	if !ok {
		return nil
	}
	selector := strconv.Itoa(m.studentIdx + 1)
	id := student.ID

	return func() tea.Msg {
		if refresh {
			// a failed invalidation is not fatal, the refetch still
			// bypasses the cache via the fetch options
			if err := services.Diary.Invalidate(ctx, id, ""); err != nil {
				log.Debug().Err(err).Int64("student", id).Msg("invalidate before refresh")
			}
		}
		switch active {
		case tabHomework:
			report, err := services.Diary.Homework(ctx, selector, opts)
			if err != nil {
				return tabDataMsg{tab: active, studentID: id, err: err}
			}
			return tabDataMsg{tab: active, studentID: id, homework: homeworkFor(report, id)}
		case tabGrades:
			report, err := services.Diary.Grades(ctx, selector, opts)
			if err != nil {
				return tabDataMsg{tab: active, studentID: id, err: err}
			}
			return tabDataMsg{tab: active, studentID: id, grades: gradesFor(report, id)}
		case tabSchedule:
			report, err := services.Diary.Schedule(ctx, selector, "", opts)
			if err != nil {
				return tabDataMsg{tab: active, studentID: id, err: err}
			}
			return tabDataMsg{tab: active, studentID: id, hours: hoursFor(report, id)}
		case tabAbsences:
			report, err := services.Diary.Absences(ctx, selector, opts)
			if err != nil {
				return tabDataMsg{tab: active, studentID: id, err: err}
			}
			return tabDataMsg{tab: active, studentID: id, absences: absencesFor(report, id)}
		}
		return nil
	}
}

func homeworkFor(r *models.HomeworkReport, id int64) []models.Homework {
	for _, s := range r.Sections {
		if s.Student.ID == id {
			return s.Homework
		}
	}
	return nil
}

func gradesFor(r *models.GradesReport, id int64) []models.CourseReport {
	for _, s := range r.Sections {
		if s.Student.ID == id {
			return s.Courses
		}
	}
	return nil
}

func hoursFor(r *models.ScheduleReport, id int64) []models.ScheduleHour {
	for _, s := range r.Sections {
		if s.Student.ID == id {
			return s.Hours
		}
	}
	return nil
}

func absencesFor(r *models.AbsencesReport, id int64) []models.Absence {
	for _, s := range r.Sections {
		if s.Student.ID == id {
			return s.Absences
		}
	}
	return nil
}
