// Package adapter provides the transport layer for communicating with the
// Shkolo REST API.
//
// The primary abstraction is [ShkoloAPI], which decouples the service layer
// from the HTTP specifics. The package ships a resty-based implementation
// ([NewShkoloAdapter]) that attaches the Shkolo headers (bearer token,
// school year, language, user agent) to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, which the CLI treats as
// an expired session).
package adapter

import (
	"context"

	"github.com/x1024/shkolo-cli/models"
)

// ShkoloAPI defines the Shkolo REST endpoints used by the application.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ShkoloAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after a successful
	// Login and when a saved session is restored.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SetSchoolYear stores the school year id sent in the School-Year
	// header of subsequent requests. Zero means no header.
	SetSchoolYear(year int64)

	// Login authenticates with username and password via
	// POST /v1/auth/login. On success the bearer token is stored via
	// SetToken. A rejected login yields ErrLoginFailed wrapping the
	// server-provided message.
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)

	// LoginGoogle authenticates with a Google ID token via
	// POST /v1/auth/google. Token handling matches Login.
	LoginGoogle(ctx context.Context, req models.GoogleLoginRequest) (*models.LoginResponse, error)

	// Logout invalidates the server-side session via POST /v1/auth/logout.
	Logout(ctx context.Context) error

	// UsersAndYears fetches the account's users with their school years
	// via GET /v1/auth/usersAndYears. Used after login to pick the
	// current school year.
	UsersAndYears(ctx context.Context) (*models.UsersAndYears, error)

	// Pupils fetches the children linked to the account via
	// GET /v1/diary/pupils. Student accounts have no children.
	Pupils(ctx context.Context) (*models.PupilsResponse, error)

	// HomeworkCourses fetches the courses of a pupil together with
	// per-course homework counts via GET /v1/diary/homeworks/courses.
	HomeworkCourses(ctx context.Context, pupilID int64) (*models.HomeworkCoursesResponse, error)

	// HomeworkList fetches the homework entries of one course group via
	// GET /v1/diary/homeworks/list/{cycGroupID}.
	HomeworkList(ctx context.Context, cycGroupID int64) (*models.HomeworkListResponse, error)

	// ScheduleHours fetches the current user's schedule for date
	// (YYYY-MM-DD) via GET /v1/diary/scheduleHours. Used for student
	// accounts.
	ScheduleHours(ctx context.Context, date string) (*models.ScheduleResponse, error)

	// PupilScheduleHours fetches a pupil's schedule for date via
	// GET /v1/diary/pupils/{pupilID}/scheduleHours.
	PupilScheduleHours(ctx context.Context, pupilID int64, date string) (*models.ScheduleResponse, error)

	// GradesSummary fetches a pupil's grades grouped by course via
	// GET /v1/diary/pupils/{pupilID}/grades/summary.
	GradesSummary(ctx context.Context, pupilID int64) (*models.GradesSummaryResponse, error)

	// Absences fetches a pupil's absences via
	// GET /v1/diary/pupils/{pupilID}/absences.
	Absences(ctx context.Context, pupilID int64) (*models.AbsencesResponse, error)

	// Notifications fetches one page of notifications via
	// GET /v1/notifications. Pages are 1-based.
	Notifications(ctx context.Context, page int) (*models.NotificationsResponse, error)

	// Events fetches upcoming events via GET /v1/events. With
	// schoolCalendar the school calendar entries are requested instead.
	Events(ctx context.Context, schoolCalendar bool) (*models.EventsResponse, error)

	// PupilEvents fetches the event invitations of one pupil via
	// GET /v1/events/invitations.
	PupilEvents(ctx context.Context, pupilUserID int64) (*models.EventsResponse, error)

	// AssignedTasks fetches the tasks assigned to the current user via
	// GET /v1/tasks/assigned. Used for student accounts.
	AssignedTasks(ctx context.Context) (*models.TasksResponse, error)

	// Raw performs an arbitrary API call and returns status and body
	// unmodified. Only a 401 is mapped to ErrUnauthorized so the shared
	// session-expiry handling still applies.
	Raw(ctx context.Context, req models.RawRequest) (*models.RawResponse, error)
}
