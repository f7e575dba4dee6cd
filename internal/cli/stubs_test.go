package cli

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/service"
	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/models"
)

// testApp wires an app around stub services and in-memory buffers. The
// setup hook sees the pre-wired services and leaves them alone, so the
// commands run without configuration, network or database.
type testApp struct {
	*app
	auth     *stubAuth
	diary    *stubDiary
	inbox    *stubInbox
	raw      *stubRaw
	sessions *memSessions
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newTestApp() *testApp {
	auth := &stubAuth{}
	diary := &stubDiary{}
	inbox := &stubInbox{}
	raw := &stubRaw{}
	sessions := &memSessions{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.App.ConfigDir = "/tmp/shkolo-test"
	cfg.Cache.TTL = config.Duration{Duration: time.Hour}

	a := &app{
		cfg:      cfg,
		log:      logger.Nop(),
		raw:      raw,
		sessions: sessions,
		services: &service.Services{Auth: auth, Diary: diary, Inbox: inbox},
		stdout:   out,
		stderr:   errOut,
		stdin:    strings.NewReader(""),
	}
	return &testApp{
		app: a, auth: auth, diary: diary, inbox: inbox,
		raw: raw, sessions: sessions, out: out, errOut: errOut,
	}
}

func (ta *testApp) stdinText(s string) {
	ta.app.stdin = strings.NewReader(s)
}

// ── session store ──────────────────────────────────────────────────────

type memSessions struct {
	saved      *models.Session
	clearCalls int
}

func (m *memSessions) Load() (*models.Session, error) {
	if m.saved == nil {
		return nil, session.ErrNoSession
	}
	return m.saved, nil
}

func (m *memSessions) Save(s *models.Session) error {
	m.saved = s
	return nil
}

func (m *memSessions) Clear() error {
	m.clearCalls++
	m.saved = nil
	return nil
}

// ── auth service ───────────────────────────────────────────────────────

type stubAuth struct {
	users       *models.UsersAndYears
	loginErr    error
	gotCreds    models.LoginRequest
	gotGoogle   models.GoogleLoginRequest
	logoutErr   error
	logoutCalls int
	status      *models.AuthStatus
	imported    *session.ImportedSession
	importPath  string
	restoreErr  error
}

func (s *stubAuth) Login(_ context.Context, creds models.LoginRequest) (*models.UsersAndYears, error) {
	s.gotCreds = creds
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	if s.users != nil {
		return s.users, nil
	}
	return &models.UsersAndYears{}, nil
}

func (s *stubAuth) LoginGoogle(_ context.Context, req models.GoogleLoginRequest) (*models.UsersAndYears, error) {
	s.gotGoogle = req
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	if s.users != nil {
		return s.users, nil
	}
	return &models.UsersAndYears{}, nil
}

func (s *stubAuth) Logout(context.Context) error {
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAuth) Status(context.Context) (*models.AuthStatus, error) {
	if s.status != nil {
		return s.status, nil
	}
	return &models.AuthStatus{}, nil
}

func (s *stubAuth) ImportToken(_ context.Context, path string) (*session.ImportedSession, error) {
	s.importPath = path
	if s.imported != nil {
		return s.imported, nil
	}
	return &session.ImportedSession{Session: &models.Session{Token: "tok"}}, nil
}

func (s *stubAuth) Restore(context.Context) (*models.Session, error) {
	if s.restoreErr != nil {
		return nil, s.restoreErr
	}
	return &models.Session{Token: "tok"}, nil
}

// ── diary service ──────────────────────────────────────────────────────

type stubDiary struct {
	students []models.Pupil
	homework *models.HomeworkReport
	grades   *models.GradesReport
	schedule *models.ScheduleReport
	absences *models.AbsencesReport
	summary  *models.SummaryReport
	err      error

	gotSelector string
	gotDate     string
	gotOpts     service.FetchOptions
	primeCalls  int
}

func (s *stubDiary) Students(context.Context, service.FetchOptions) ([]models.Pupil, models.CacheInfo, error) {
	return s.students, models.CacheInfo{}, s.err
}

func (s *stubDiary) Homework(_ context.Context, selector string, opts service.FetchOptions) (*models.HomeworkReport, error) {
	s.gotSelector, s.gotOpts = selector, opts
	if s.err != nil {
		return nil, s.err
	}
	if s.homework != nil {
		return s.homework, nil
	}
	return &models.HomeworkReport{Sections: []models.StudentHomework{}}, nil
}

func (s *stubDiary) Grades(_ context.Context, selector string, opts service.FetchOptions) (*models.GradesReport, error) {
	s.gotSelector, s.gotOpts = selector, opts
	if s.err != nil {
		return nil, s.err
	}
	if s.grades != nil {
		return s.grades, nil
	}
	return &models.GradesReport{Sections: []models.StudentGrades{}}, nil
}

func (s *stubDiary) Schedule(_ context.Context, selector, date string, opts service.FetchOptions) (*models.ScheduleReport, error) {
	s.gotSelector, s.gotDate, s.gotOpts = selector, date, opts
	if s.err != nil {
		return nil, s.err
	}
	if s.schedule != nil {
		return s.schedule, nil
	}
	return &models.ScheduleReport{Date: date, Sections: []models.StudentSchedule{}}, nil
}

func (s *stubDiary) Absences(_ context.Context, selector string, opts service.FetchOptions) (*models.AbsencesReport, error) {
	s.gotSelector, s.gotOpts = selector, opts
	if s.err != nil {
		return nil, s.err
	}
	if s.absences != nil {
		return s.absences, nil
	}
	return &models.AbsencesReport{Sections: []models.StudentAbsences{}}, nil
}

func (s *stubDiary) Summary(_ context.Context, opts service.FetchOptions) (*models.SummaryReport, error) {
	s.gotOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	if s.summary != nil {
		return s.summary, nil
	}
	return &models.SummaryReport{Sections: []models.StudentSummary{}}, nil
}

func (s *stubDiary) Prime(context.Context) ([]models.Pupil, error) {
	s.primeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.students, nil
}

func (s *stubDiary) Invalidate(context.Context, int64, string) error {
	return s.err
}

// ── inbox service ──────────────────────────────────────────────────────

type stubInbox struct {
	notifications []models.Notification
	events        *models.EventsReport
	err           error

	gotPage     int
	gotCalendar bool
}

func (s *stubInbox) Notifications(_ context.Context, page int) ([]models.Notification, error) {
	s.gotPage = page
	if s.err != nil {
		return nil, s.err
	}
	return s.notifications, nil
}

func (s *stubInbox) Events(_ context.Context, schoolCalendar bool, _ service.FetchOptions) (*models.EventsReport, error) {
	s.gotCalendar = schoolCalendar
	if s.err != nil {
		return nil, s.err
	}
	if s.events != nil {
		return s.events, nil
	}
	return &models.EventsReport{Events: []models.Event{}, Sections: []models.StudentEvents{}}, nil
}

// ── cache repository ───────────────────────────────────────────────────

type stubRepo struct {
	purgeCalls int
}

func (r *stubRepo) Get(context.Context, string) (models.CacheEntry, error) {
	return models.CacheEntry{}, cache.ErrCacheMiss
}

func (r *stubRepo) Put(context.Context, string, string) error { return nil }

func (r *stubRepo) Delete(context.Context, string) error { return nil }

func (r *stubRepo) Purge(context.Context) error {
	r.purgeCalls++
	return nil
}

// ── raw adapter ────────────────────────────────────────────────────────

type stubRaw struct {
	resp  *models.RawResponse
	err   error
	calls int
	got   models.RawRequest
}

func (s *stubRaw) Raw(_ context.Context, req models.RawRequest) (*models.RawResponse, error) {
	s.calls++
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	if s.resp != nil {
		return s.resp, nil
	}
	return &models.RawResponse{Status: 200, Body: []byte(`{"ok":true}`)}, nil
}
