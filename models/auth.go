package models

// LoginRequest is the payload for the username/password login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the payload for the Google sign-in endpoint.
// The API expects the raw Google ID token under the camel-cased key.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// LoginResponse is returned by both login endpoints.
//
// Token is empty when authentication failed; Message then carries the
// server-side explanation (wrong credentials, locked account, ...).
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// UserRole describes one role attached to an account (parent, pupil,
// teacher). The same physical person can carry several roles.
type UserRole struct {
	RoleID   FlexInt `json:"role_id"`
	RoleName string  `json:"role_name"`
}

// SchoolYear is one academic-year context an account has access to.
// Higher IDs are more recent years; the numeric ID is also the value
// sent in the School-Year request header.
type SchoolYear struct {
	ID       int64  `json:"id"`
	YearName string `json:"year_name"`
}

// User is one account entry from the usersAndYears endpoint.
type User struct {
	ID    FlexInt      `json:"id"`
	Names string       `json:"names"`
	Roles []UserRole   `json:"roles"`
	Years []SchoolYear `json:"years"`
}

// UsersAndYears is the account/year metadata fetched right after login.
// It is persisted verbatim inside the session so that status and the
// dashboard can show names and roles without another round trip.
type UsersAndYears struct {
	Users []User `json:"users"`
}

// CurrentSchoolYear returns the school year to select after login:
// scan users in order, stop at the first one that has any years, and
// take that user's highest numeric year id. The boolean is false when
// no user carries a year list.
func (u UsersAndYears) CurrentSchoolYear() (int64, bool) {
	for _, user := range u.Users {
		if len(user.Years) == 0 {
			continue
		}
		max := user.Years[0].ID
		for _, y := range user.Years[1:] {
			if y.ID > max {
				max = y.ID
			}
		}
		return max, true
	}
	return 0, false
}
