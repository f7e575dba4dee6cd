package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/x1024/shkolo-cli/models"
)

// The Shkolo iOS app (a React Native build) keeps its AsyncStorage data
// in a manifest file inside the app container. On macOS the container of
// the Catalyst build lives under ~/Library/Containers.
const (
	iosContainerID  = "DD1CC5D9-F40E-415C-8E47-094321279222"
	iosManifestPath = "Data/Library/Application Support/com.shkolo.mobileapp/RCTAsyncLocalStorage_V1/manifest.json"
)

// AsyncStorage keys written by the app's ShkoloStore module.
const (
	manifestKeyToken  = "@ShkoloStore:Token"
	manifestKeyUserID = "@ShkoloStore:CurrentUserId"
	manifestKeyNames  = "@ShkoloStore:CurrentUserNames"
	manifestKeyRoles  = "@ShkoloStore:CurrentUserRoles"
)

// ImportedSession is the result of reading the iOS app storage: a ready
// to save session plus the identity fields for display.
type ImportedSession struct {
	Session *models.Session
	UserID  string
	Names   string
	Roles   string
}

// DefaultManifestPath returns the expected location of the iOS app
// storage manifest for the current user.
func DefaultManifestPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Containers", iosContainerID, iosManifestPath)
}

// ImportFromManifest reads the app storage manifest at path and builds a
// session from the token stored there. The user payload is reconstructed
// in the same shape the login endpoint returns so that later commands can
// treat both session origins alike.
//
// Returns ErrManifestNotFound when the manifest does not exist and
// ErrNoTokenInManifest when it carries no token.
func ImportFromManifest(path string) (*ImportedSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrManifestNotFound
		}
		return nil, fmt.Errorf("read app data: %w", err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("read app data: %w", err)
	}

	token, _ := manifest[manifestKeyToken].(string)
	if token == "" {
		return nil, ErrNoTokenInManifest
	}

	userData, err := json.Marshal(map[string]any{
		"users": []any{
			map[string]any{
				"id":    manifest[manifestKeyUserID],
				"names": manifest[manifestKeyNames],
				"roles": []any{
					map[string]any{"role_id": manifest[manifestKeyRoles]},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rebuild user data: %w", err)
	}

	return &ImportedSession{
		Session: &models.Session{Token: token, UserData: userData},
		UserID:  display(manifest[manifestKeyUserID]),
		Names:   display(manifest[manifestKeyNames]),
		Roles:   display(manifest[manifestKeyRoles]),
	}, nil
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
