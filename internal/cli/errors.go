package cli

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/x1024/shkolo-cli/internal/adapter"
	appmsg "github.com/x1024/shkolo-cli/internal/app"
	"github.com/x1024/shkolo-cli/internal/service"
	"github.com/x1024/shkolo-cli/internal/session"
)

// fail is the single exit policy for command errors. An expired session
// additionally drops the saved token so the next run prompts a fresh
// login. In JSON mode the error goes to stdout as the failure envelope,
// otherwise to stderr as a one-line message.
func (a *app) fail(err error) int {
	if errors.Is(err, adapter.ErrUnauthorized) && a.sessions != nil {
		if cerr := a.sessions.Clear(); cerr != nil && a.log != nil {
			a.log.Debug().Err(cerr).Msg("clearing session after 401")
		}
	}
	if a.jsonOut && a.json != nil {
		a.json.Error(err)
		return 1
	}
	fmt.Fprintln(a.stderr, "Error: "+message(err))
	return 1
}

// message translates the sentinel errors into the user-facing wording
// and falls back to the error text itself.
func message(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return appmsg.MsgSessionExpired
	case errors.Is(err, service.ErrNotAuthenticated):
		return appmsg.MsgNotAuthenticated
	case errors.Is(err, session.ErrManifestNotFound):
		return appmsg.MsgManifestNotFound
	case errors.Is(err, session.ErrNoTokenInManifest):
		return appmsg.MsgNoTokenInManifest
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
