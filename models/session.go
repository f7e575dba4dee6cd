package models

import "encoding/json"

// Session is the persisted authentication state, written to
// token.json in the config directory after a successful login or
// token import and deleted on logout.
//
// UserData holds the raw usersAndYears payload (or the synthesized
// equivalent produced by the mobile-app import). It is kept as
// [json.RawMessage] because the two sources produce different shapes
// and nothing downstream needs more than best-effort access to it.
type Session struct {
	// Token is the bearer token sent in the Authorization header.
	Token string `json:"token"`

	// SchoolYear is the auto-selected school-year id, 0 when none
	// was available at login time.
	SchoolYear int64 `json:"school_year"`

	// UserData is the account metadata blob captured at login.
	UserData json.RawMessage `json:"user_data,omitempty"`
}

// Users decodes the embedded account metadata. Returns a zero value
// when the blob is absent or does not match the usersAndYears shape;
// callers only use it for display.
func (s Session) Users() UsersAndYears {
	var u UsersAndYears
	if len(s.UserData) == 0 {
		return u
	}
	_ = json.Unmarshal(s.UserData, &u)
	return u
}
