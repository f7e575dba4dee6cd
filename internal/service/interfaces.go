// Package service implements the application layer behind the CLI
// commands: the authentication and session lifecycle, the cached
// per-pupil diary reports and the notification and event feeds.
package service

import (
	"context"

	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/models"
)

// AuthService defines the contract for the login session persisted
// between command invocations. Implementations load the session into
// the API adapter and keep the session file in sync with it.
type AuthService interface {
	// Login authenticates with username and password, selects the
	// current school year and saves the session.
	// Returns the account's users and school years, or an error if the
	// credentials are rejected or any step fails.
	Login(ctx context.Context, creds models.LoginRequest) (*models.UsersAndYears, error)

	// LoginGoogle authenticates with a Google ID token and otherwise
	// behaves like Login.
	LoginGoogle(ctx context.Context, req models.GoogleLoginRequest) (*models.UsersAndYears, error)

	// Logout revokes the session on the server when one is saved and
	// always removes the local session file. A failed server call is
	// logged, not returned.
	Logout(ctx context.Context) error

	// Status reports whether a session is saved and what it contains.
	// A missing or unreadable session file yields an unauthenticated
	// status, not an error.
	Status(ctx context.Context) (*models.AuthStatus, error)

	// ImportToken reads the bearer token from the Shkolo iOS app's
	// preferences manifest and saves it as the session, enriching it
	// with live account data when the token works. An empty path means
	// the default simulator location.
	// Returns the imported identity, or an error when the manifest is
	// missing, unreadable or carries no token.
	ImportToken(ctx context.Context, manifestPath string) (*session.ImportedSession, error)

	// Restore loads the saved session into the API adapter so
	// subsequent calls are authenticated.
	// Returns ErrNotAuthenticated when no usable session exists.
	Restore(ctx context.Context) (*models.Session, error)
}

// DiaryService defines the contract for the per-pupil reports. All
// report fetches go through the response cache according to the given
// options.
type DiaryService interface {
	// Students returns the account's child pupils sorted by name,
	// along with where the list came from. Student accounts get an
	// empty list.
	Students(ctx context.Context, opts FetchOptions) ([]models.Pupil, models.CacheInfo, error)

	// Homework assembles the homework of the pupils matching selector,
	// newest first. Accounts without child pupils fall back to the
	// account's own schedule and assigned tasks.
	Homework(ctx context.Context, selector string, opts FetchOptions) (*models.HomeworkReport, error)

	// Grades assembles the grade summaries of the pupils matching
	// selector, keeping only courses that carry grades.
	Grades(ctx context.Context, selector string, opts FetchOptions) (*models.GradesReport, error)

	// Schedule assembles the lessons of the pupils matching selector
	// for one date, given as YYYY-MM-DD and defaulting to today.
	// Accounts without child pupils get the account's own schedule.
	Schedule(ctx context.Context, selector, date string, opts FetchOptions) (*models.ScheduleReport, error)

	// Absences assembles the absences of the pupils matching selector,
	// newest first.
	Absences(ctx context.Context, selector string, opts FetchOptions) (*models.AbsencesReport, error)

	// Summary condenses today's schedule, the most recent homework and
	// the grade count for every pupil.
	Summary(ctx context.Context, opts FetchOptions) (*models.SummaryReport, error)

	// Prime refetches the students list and re-primes the homework,
	// grades and today's-schedule caches of every pupil.
	// Returns the refreshed students list.
	Prime(ctx context.Context) ([]models.Pupil, error)

	// Invalidate deletes one pupil's cache entries so the next fetch
	// goes to the network. The date picks the schedule entry to drop.
	Invalidate(ctx context.Context, studentID int64, date string) error
}

// InboxService defines the contract for the account-wide feeds.
type InboxService interface {
	// Notifications returns one page of the account's notifications,
	// pages starting at 1. The feed is always fetched live.
	Notifications(ctx context.Context, page int) ([]models.Notification, error)

	// Events returns the school-wide event list and, for parent
	// accounts, each pupil's event invitations.
	Events(ctx context.Context, schoolCalendar bool, opts FetchOptions) (*models.EventsReport, error)
}
