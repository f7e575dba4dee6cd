// Package session persists the authenticated Shkolo session between
// command invocations.
//
// A session is the bearer token obtained at login together with the
// selected school year and the raw user payload returned by the API.
// The default implementation keeps it in a JSON file under the config
// directory, readable only by the owner.
package session

import "github.com/x1024/shkolo-cli/models"

// Store loads and persists the current session.
type Store interface {

	// Load returns the saved session. A missing, unreadable, or
	// malformed session file yields ErrNoSession.
	Load() (*models.Session, error)

	// Save persists the session, creating the config directory when
	// needed. The session file is written atomically with 0600 mode.
	Save(*models.Session) error

	// Clear removes the saved session. Removing an absent session is
	// not an error.
	Clear() error
}
