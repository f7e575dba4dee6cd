// Package app contains shared application-layer constants used across
// the shkolo-cli commands.
//
// All Msg* constants are human-readable message strings shown to the
// user when an operation fails. Keeping them in one place ensures
// consistent wording across the text renderer and the command error
// policy.
package app

const (
	// MsgSessionExpired is shown when the API rejects the saved token
	// with a 401. The saved session is dropped alongside.
	MsgSessionExpired = "Session expired. Please login again."

	// MsgNotAuthenticated is shown when a command that needs a session
	// runs without one.
	MsgNotAuthenticated = "Not authenticated. Run 'shkolo login' or 'shkolo import-token' first."

	// MsgManifestNotFound is shown when import-token cannot locate the
	// iOS app's preferences manifest.
	MsgManifestNotFound = "Shkolo iOS app data not found.\nMake sure the Shkolo app is installed and you've logged in."

	// MsgNoTokenInManifest is shown when the manifest exists but holds
	// no bearer token.
	MsgNoTokenInManifest = "No token found in app storage."
)
