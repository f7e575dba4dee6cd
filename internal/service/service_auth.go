package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/internal/validators"
	"github.com/x1024/shkolo-cli/models"
)

type authService struct {
	api       adapter.ShkoloAPI
	sessions  session.Store
	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService returns an AuthService backed by the given API adapter
// and session store.
func NewAuthService(api adapter.ShkoloAPI, sessions session.Store, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		api:       api,
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, creds models.LoginRequest) (*models.UsersAndYears, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return nil, err
	}
	if _, err := a.api.Login(ctx, creds); err != nil {
		return nil, err
	}
	return a.establishSession(ctx)
}

// LoginGoogle implements [AuthService].
func (a *authService) LoginGoogle(ctx context.Context, req models.GoogleLoginRequest) (*models.UsersAndYears, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	if _, err := a.api.LoginGoogle(ctx, req); err != nil {
		return nil, err
	}
	return a.establishSession(ctx)
}

// establishSession runs the post-login sequence: fetch the account's
// users and years, select the current school year on the adapter and
// persist the session.
func (a *authService) establishSession(ctx context.Context) (*models.UsersAndYears, error) {
	users, err := a.api.UsersAndYears(ctx)
	if err != nil {
		return nil, err
	}

	year, ok := users.CurrentSchoolYear()
	if ok {
		a.api.SetSchoolYear(year)
	}

	userData, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("encode user data: %w", err)
	}

	sess := &models.Session{
		Token:      a.api.Token(),
		SchoolYear: year,
		UserData:   userData,
	}
	if err := a.sessions.Save(sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return users, nil
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) error {
	if sess, err := a.sessions.Load(); err == nil {
		a.api.SetToken(sess.Token)
		if sess.SchoolYear != 0 {
			a.api.SetSchoolYear(sess.SchoolYear)
		}
		if err := a.api.Logout(ctx); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("server-side logout failed")
		}
	}

	if err := a.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Status implements [AuthService].
func (a *authService) Status(_ context.Context) (*models.AuthStatus, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return &models.AuthStatus{}, nil
	}

	users := sess.Users()
	status := &models.AuthStatus{
		Authenticated: true,
		Users:         users.Users,
		SchoolYear:    sess.SchoolYear,
	}
	if expiry, ok := tokenExpiry(sess.Token); ok {
		status.TokenExpiry = expiry
	}
	return status, nil
}

// tokenExpiry extracts the expiry claim of a bearer token without
// verifying the signature; the token is only inspected for display.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// ImportToken implements [AuthService]. The manifest session is saved
// even when the live enrichment call fails, so the import also works
// offline.
func (a *authService) ImportToken(ctx context.Context, manifestPath string) (*session.ImportedSession, error) {
	if manifestPath == "" {
		manifestPath = session.DefaultManifestPath()
	}

	imported, err := session.ImportFromManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	a.api.SetToken(imported.Session.Token)
	if users, err := a.api.UsersAndYears(ctx); err == nil {
		if year, ok := users.CurrentSchoolYear(); ok {
			imported.Session.SchoolYear = year
			a.api.SetSchoolYear(year)
		}
		if userData, merr := json.Marshal(users); merr == nil {
			imported.Session.UserData = userData
		}
	} else {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed, saving manifest session as-is")
	}

	if err := a.sessions.Save(imported.Session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return imported, nil
}

// Restore implements [AuthService].
func (a *authService) Restore(_ context.Context) (*models.Session, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	a.api.SetToken(sess.Token)
	if sess.SchoolYear != 0 {
		a.api.SetSchoolYear(sess.SchoolYear)
	}
	return sess, nil
}
