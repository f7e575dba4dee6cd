package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/models"
)

// GoogleClientID is the Google OAuth client id registered by the official
// Shkolo iOS app. ID tokens presented to LoginGoogle must be issued for
// this client.
const GoogleClientID = "186341692533-14k2gd4i6fsj230cqu40jf04dp0igr3j.apps.googleusercontent.com"

type shkoloAdapter struct {
	client *resty.Client

	mu         sync.RWMutex
	token      string
	schoolYear int64

	logger *logger.Logger
}

// NewShkoloAdapter constructs the resty-backed implementation of
// [ShkoloAPI]. It normalises and validates the base URL from appCfg,
// configures the shared headers the Shkolo API expects on every request
// (Accept, Content-Type, User-Agent, language), and installs a debug hook
// logging each exchange.
//
// Returns an error if appCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewShkoloAdapter(appCfg config.App, log *logger.Logger) (ShkoloAPI, error) {
	baseURL, err := normalizeBaseURL(appCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(appCfg.RequestTimeout.Duration).
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
			"User-Agent":   appCfg.UserAgent,
			"language":     appCfg.Language,
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("api request")
			return nil
		})

	return &shkoloAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ShkoloAPI]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (a *shkoloAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = strings.TrimSpace(token)
}

// Token implements [ShkoloAPI].
func (a *shkoloAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// SetSchoolYear implements [ShkoloAPI].
func (a *shkoloAdapter) SetSchoolYear(year int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.schoolYear = year
}

// Login implements [ShkoloAPI]. A non-200 response is reported as
// ErrLoginFailed carrying the message from the response body when one is
// present. A 200 response without a token is also a failed login.
func (a *shkoloAdapter) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/v1/auth/login")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	lr, err := parseLoginResponse(resp, "no token received")
	if err != nil {
		return nil, err
	}

	a.SetToken(lr.Token)
	return lr, nil
}

// LoginGoogle implements [ShkoloAPI]. Token handling matches Login.
func (a *shkoloAdapter) LoginGoogle(ctx context.Context, req models.GoogleLoginRequest) (*models.LoginResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/v1/auth/google")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	lr, err := parseLoginResponse(resp, "no token received from Google auth")
	if err != nil {
		return nil, err
	}

	a.SetToken(lr.Token)
	return lr, nil
}

// parseLoginResponse turns an auth endpoint response into a LoginResponse
// or an ErrLoginFailed describing why the attempt was rejected.
func parseLoginResponse(resp *resty.Response, noTokenMsg string) (*models.LoginResponse, error) {
	if resp.StatusCode() != http.StatusOK {
		var lr models.LoginResponse
		// error bodies are not always JSON
		_ = json.Unmarshal(resp.Body(), &lr)
		if lr.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrLoginFailed, lr.Message)
		}
		return nil, ErrLoginFailed
	}

	var lr models.LoginResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return nil, fmt.Errorf("%w: %s", ErrLoginFailed, noTokenMsg)
	}
	return &lr, nil
}

// Logout implements [ShkoloAPI].
func (a *shkoloAdapter) Logout(ctx context.Context) error {
	resp, err := a.authedRequest(ctx).Post("/v1/auth/logout")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

// UsersAndYears implements [ShkoloAPI].
func (a *shkoloAdapter) UsersAndYears(ctx context.Context) (*models.UsersAndYears, error) {
	resp, err := a.authedRequest(ctx).Get("/v1/auth/usersAndYears")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var uy models.UsersAndYears
	if err = json.Unmarshal(resp.Body(), &uy); err != nil {
		return nil, fmt.Errorf("decode users and years response: %w", err)
	}
	return &uy, nil
}

// Pupils implements [ShkoloAPI].
func (a *shkoloAdapter) Pupils(ctx context.Context) (*models.PupilsResponse, error) {
	resp, err := a.authedRequest(ctx).Get("/v1/diary/pupils")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.PupilsResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode pupils response: %w", err)
	}
	return &pr, nil
}

// HomeworkCourses implements [ShkoloAPI].
func (a *shkoloAdapter) HomeworkCourses(ctx context.Context, pupilID int64) (*models.HomeworkCoursesResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("pupilId", strconv.FormatInt(pupilID, 10)).
		Get("/v1/diary/homeworks/courses")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var hc models.HomeworkCoursesResponse
	if err = json.Unmarshal(resp.Body(), &hc); err != nil {
		return nil, fmt.Errorf("decode homework courses response: %w", err)
	}
	return &hc, nil
}

// HomeworkList implements [ShkoloAPI].
func (a *shkoloAdapter) HomeworkList(ctx context.Context, cycGroupID int64) (*models.HomeworkListResponse, error) {
	resp, err := a.authedRequest(ctx).
		Get("/v1/diary/homeworks/list/" + strconv.FormatInt(cycGroupID, 10))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var hl models.HomeworkListResponse
	if err = json.Unmarshal(resp.Body(), &hl); err != nil {
		return nil, fmt.Errorf("decode homework list response: %w", err)
	}
	return &hl, nil
}

// ScheduleHours implements [ShkoloAPI].
func (a *shkoloAdapter) ScheduleHours(ctx context.Context, date string) (*models.ScheduleResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("date", date).
		Get("/v1/diary/scheduleHours")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.ScheduleResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode schedule response: %w", err)
	}
	return &sr, nil
}

// PupilScheduleHours implements [ShkoloAPI].
func (a *shkoloAdapter) PupilScheduleHours(ctx context.Context, pupilID int64, date string) (*models.ScheduleResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("date", date).
		Get("/v1/diary/pupils/" + strconv.FormatInt(pupilID, 10) + "/scheduleHours")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.ScheduleResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode pupil schedule response: %w", err)
	}
	return &sr, nil
}

// GradesSummary implements [ShkoloAPI].
func (a *shkoloAdapter) GradesSummary(ctx context.Context, pupilID int64) (*models.GradesSummaryResponse, error) {
	resp, err := a.authedRequest(ctx).
		Get("/v1/diary/pupils/" + strconv.FormatInt(pupilID, 10) + "/grades/summary")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var gr models.GradesSummaryResponse
	if err = json.Unmarshal(resp.Body(), &gr); err != nil {
		return nil, fmt.Errorf("decode grades summary response: %w", err)
	}
	return &gr, nil
}

// Absences implements [ShkoloAPI].
func (a *shkoloAdapter) Absences(ctx context.Context, pupilID int64) (*models.AbsencesResponse, error) {
	resp, err := a.authedRequest(ctx).
		Get("/v1/diary/pupils/" + strconv.FormatInt(pupilID, 10) + "/absences")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ar models.AbsencesResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return nil, fmt.Errorf("decode absences response: %w", err)
	}
	return &ar, nil
}

// Notifications implements [ShkoloAPI].
func (a *shkoloAdapter) Notifications(ctx context.Context, page int) (*models.NotificationsResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/v1/notifications")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var nr models.NotificationsResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, fmt.Errorf("decode notifications response: %w", err)
	}
	return &nr, nil
}

// Events implements [ShkoloAPI].
func (a *shkoloAdapter) Events(ctx context.Context, schoolCalendar bool) (*models.EventsResponse, error) {
	req := a.authedRequest(ctx)
	if schoolCalendar {
		req.SetQueryParam("is_school_calendar", "1")
	}
	resp, err := req.Get("/v1/events")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var er models.EventsResponse
	if err = json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}
	return &er, nil
}

// PupilEvents implements [ShkoloAPI].
func (a *shkoloAdapter) PupilEvents(ctx context.Context, pupilUserID int64) (*models.EventsResponse, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("pupil_user_id", strconv.FormatInt(pupilUserID, 10)).
		Get("/v1/events/invitations")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var er models.EventsResponse
	if err = json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode pupil events response: %w", err)
	}
	return &er, nil
}

// AssignedTasks implements [ShkoloAPI].
func (a *shkoloAdapter) AssignedTasks(ctx context.Context) (*models.TasksResponse, error) {
	resp, err := a.authedRequest(ctx).Get("/v1/tasks/assigned")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tr models.TasksResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return nil, fmt.Errorf("decode tasks response: %w", err)
	}
	return &tr, nil
}

// Raw implements [ShkoloAPI]. The response passes through unmapped apart
// from 401, which keeps the shared session-expiry handling working for
// hand-crafted requests too.
func (a *shkoloAdapter) Raw(ctx context.Context, req models.RawRequest) (*models.RawResponse, error) {
	r := a.authedRequest(ctx)
	if req.Data != "" {
		r.SetBody([]byte(req.Data))
	}

	resp, err := r.Execute(req.Method, req.NormalizedEndpoint())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, mapHTTPError(resp)
	}

	return &models.RawResponse{Status: resp.StatusCode(), Body: resp.Body()}, nil
}

func (a *shkoloAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().SetContext(ctx)

	a.mu.RLock()
	token, year := a.token, a.schoolYear
	a.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if year != 0 {
		req.SetHeader("School-Year", strconv.FormatInt(year, 10))
	}
	return req
}
