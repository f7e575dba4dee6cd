package session

import "errors"

var (
	ErrNoSession         = errors.New("no saved session")
	ErrManifestNotFound  = errors.New("shkolo iOS app data not found")
	ErrNoTokenInManifest = errors.New("no token found in app storage")
)
