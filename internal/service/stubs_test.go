package service

import (
	"context"
	"time"

	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/models"
)

// stubAPI is a hand-written ShkoloAPI test double: each endpoint
// delegates to an optional function field and counts its calls, so
// tests can both script responses and assert that cached paths stay
// off the network. Unscripted endpoints return empty payloads.
type stubAPI struct {
	token      string
	schoolYear int64

	loginFn           func(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	loginGoogleFn     func(ctx context.Context, req models.GoogleLoginRequest) (*models.LoginResponse, error)
	logoutFn          func(ctx context.Context) error
	usersAndYearsFn   func(ctx context.Context) (*models.UsersAndYears, error)
	pupilsFn          func(ctx context.Context) (*models.PupilsResponse, error)
	homeworkCoursesFn func(ctx context.Context, pupilID int64) (*models.HomeworkCoursesResponse, error)
	homeworkListFn    func(ctx context.Context, cycGroupID int64) (*models.HomeworkListResponse, error)
	scheduleHoursFn   func(ctx context.Context, date string) (*models.ScheduleResponse, error)
	pupilScheduleFn   func(ctx context.Context, pupilID int64, date string) (*models.ScheduleResponse, error)
	gradesSummaryFn   func(ctx context.Context, pupilID int64) (*models.GradesSummaryResponse, error)
	absencesFn        func(ctx context.Context, pupilID int64) (*models.AbsencesResponse, error)
	notificationsFn   func(ctx context.Context, page int) (*models.NotificationsResponse, error)
	eventsFn          func(ctx context.Context, schoolCalendar bool) (*models.EventsResponse, error)
	pupilEventsFn     func(ctx context.Context, pupilUserID int64) (*models.EventsResponse, error)
	assignedTasksFn   func(ctx context.Context) (*models.TasksResponse, error)
	rawFn             func(ctx context.Context, req models.RawRequest) (*models.RawResponse, error)

	loginCalls         int
	logoutCalls        int
	pupilsCalls        int
	coursesCalls       int
	listCalls          int
	scheduleCalls      int
	pupilScheduleCalls int
	gradesCalls        int
	absencesCalls      int
	eventsCalls        int
	pupilEventsCalls   int
	tasksCalls         int
}

func (s *stubAPI) SetToken(token string) { s.token = token }

func (s *stubAPI) Token() string { return s.token }

func (s *stubAPI) SetSchoolYear(year int64) { s.schoolYear = year }

// Login stores the returned token like the real adapter does.
func (s *stubAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	s.loginCalls++
	if s.loginFn == nil {
		return &models.LoginResponse{}, nil
	}
	resp, err := s.loginFn(ctx, req)
	if err == nil && resp.Token != "" {
		s.token = resp.Token
	}
	return resp, err
}

func (s *stubAPI) LoginGoogle(ctx context.Context, req models.GoogleLoginRequest) (*models.LoginResponse, error) {
	if s.loginGoogleFn == nil {
		return &models.LoginResponse{}, nil
	}
	resp, err := s.loginGoogleFn(ctx, req)
	if err == nil && resp.Token != "" {
		s.token = resp.Token
	}
	return resp, err
}

func (s *stubAPI) Logout(ctx context.Context) error {
	s.logoutCalls++
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx)
}

func (s *stubAPI) UsersAndYears(ctx context.Context) (*models.UsersAndYears, error) {
	if s.usersAndYearsFn == nil {
		return &models.UsersAndYears{}, nil
	}
	return s.usersAndYearsFn(ctx)
}

func (s *stubAPI) Pupils(ctx context.Context) (*models.PupilsResponse, error) {
	s.pupilsCalls++
	if s.pupilsFn == nil {
		return &models.PupilsResponse{}, nil
	}
	return s.pupilsFn(ctx)
}

func (s *stubAPI) HomeworkCourses(ctx context.Context, pupilID int64) (*models.HomeworkCoursesResponse, error) {
	s.coursesCalls++
	if s.homeworkCoursesFn == nil {
		return &models.HomeworkCoursesResponse{}, nil
	}
	return s.homeworkCoursesFn(ctx, pupilID)
}

func (s *stubAPI) HomeworkList(ctx context.Context, cycGroupID int64) (*models.HomeworkListResponse, error) {
	s.listCalls++
	if s.homeworkListFn == nil {
		return &models.HomeworkListResponse{}, nil
	}
	return s.homeworkListFn(ctx, cycGroupID)
}

func (s *stubAPI) ScheduleHours(ctx context.Context, date string) (*models.ScheduleResponse, error) {
	s.scheduleCalls++
	if s.scheduleHoursFn == nil {
		return &models.ScheduleResponse{}, nil
	}
	return s.scheduleHoursFn(ctx, date)
}

func (s *stubAPI) PupilScheduleHours(ctx context.Context, pupilID int64, date string) (*models.ScheduleResponse, error) {
	s.pupilScheduleCalls++
	if s.pupilScheduleFn == nil {
		return &models.ScheduleResponse{}, nil
	}
	return s.pupilScheduleFn(ctx, pupilID, date)
}

func (s *stubAPI) GradesSummary(ctx context.Context, pupilID int64) (*models.GradesSummaryResponse, error) {
	s.gradesCalls++
	if s.gradesSummaryFn == nil {
		return &models.GradesSummaryResponse{}, nil
	}
	return s.gradesSummaryFn(ctx, pupilID)
}

func (s *stubAPI) Absences(ctx context.Context, pupilID int64) (*models.AbsencesResponse, error) {
	s.absencesCalls++
	if s.absencesFn == nil {
		return &models.AbsencesResponse{}, nil
	}
	return s.absencesFn(ctx, pupilID)
}

func (s *stubAPI) Notifications(ctx context.Context, page int) (*models.NotificationsResponse, error) {
	if s.notificationsFn == nil {
		return &models.NotificationsResponse{}, nil
	}
	return s.notificationsFn(ctx, page)
}

func (s *stubAPI) Events(ctx context.Context, schoolCalendar bool) (*models.EventsResponse, error) {
	s.eventsCalls++
	if s.eventsFn == nil {
		return &models.EventsResponse{}, nil
	}
	return s.eventsFn(ctx, schoolCalendar)
}

func (s *stubAPI) PupilEvents(ctx context.Context, pupilUserID int64) (*models.EventsResponse, error) {
	s.pupilEventsCalls++
	if s.pupilEventsFn == nil {
		return &models.EventsResponse{}, nil
	}
	return s.pupilEventsFn(ctx, pupilUserID)
}

func (s *stubAPI) AssignedTasks(ctx context.Context) (*models.TasksResponse, error) {
	s.tasksCalls++
	if s.assignedTasksFn == nil {
		return &models.TasksResponse{}, nil
	}
	return s.assignedTasksFn(ctx)
}

func (s *stubAPI) Raw(ctx context.Context, req models.RawRequest) (*models.RawResponse, error) {
	if s.rawFn == nil {
		return &models.RawResponse{}, nil
	}
	return s.rawFn(ctx, req)
}

// memStore is an in-memory session.Store.
type memStore struct {
	sess    *models.Session
	saveErr error
}

func (m *memStore) Load() (*models.Session, error) {
	if m.sess == nil {
		return nil, session.ErrNoSession
	}
	return m.sess, nil
}

func (m *memStore) Save(sess *models.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = sess
	return nil
}

func (m *memStore) Clear() error {
	m.sess = nil
	return nil
}

// memRepo is an in-memory cache.Repository with scriptable failures.
type memRepo struct {
	entries map[string]models.CacheEntry
	getErr  error
	putErr  error

	puts    int
	deletes int
}

func newMemRepo() *memRepo {
	return &memRepo{entries: map[string]models.CacheEntry{}}
}

// seed stores a payload under key as if it were cached age ago.
func (m *memRepo) seed(key, payload string, age time.Duration) {
	m.entries[key] = models.CacheEntry{Key: key, Payload: payload, CachedAt: time.Now().Add(-age)}
}

func (m *memRepo) Get(_ context.Context, key string) (models.CacheEntry, error) {
	if m.getErr != nil {
		return models.CacheEntry{}, m.getErr
	}
	entry, ok := m.entries[key]
	if !ok {
		return models.CacheEntry{}, cache.ErrCacheMiss
	}
	return entry, nil
}

func (m *memRepo) Put(_ context.Context, key, payload string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.entries[key] = models.CacheEntry{Key: key, Payload: payload, CachedAt: time.Now()}
	return nil
}

func (m *memRepo) Delete(_ context.Context, key string) error {
	m.deletes++
	delete(m.entries, key)
	return nil
}

func (m *memRepo) Purge(_ context.Context) error {
	m.entries = map[string]models.CacheEntry{}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{TTL: config.Duration{Duration: time.Hour}},
	}
}
