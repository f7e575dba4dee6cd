package service

import (
	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/internal/validators"
)

// Services bundles the application services used by the CLI commands
// and the dashboard.
type Services struct {
	Auth  AuthService
	Diary DiaryService
	Inbox InboxService
}

// NewServices wires all services to the API adapter, the session store
// and the response cache. A nil cache repository turns caching off.
func NewServices(api adapter.ShkoloAPI, sessions session.Store, repo cache.Repository, cfg *config.Config, log *logger.Logger) *Services {
	diary := NewDiaryService(api, repo, cfg, log)
	return &Services{
		Auth:  NewAuthService(api, sessions, validators.NewRequestValidator(), log),
		Diary: diary,
		Inbox: NewInboxService(api, diary, repo, cfg, log),
	}
}
