// Package cli assembles the cobra command tree and wires the
// configuration, logger, API adapter, session store, response cache and
// services behind it. Report output goes to stdout through the render
// package; errors are printed once, by the shared exit policy in
// errors.go.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/render"
	"github.com/x1024/shkolo-cli/internal/service"
	"github.com/x1024/shkolo-cli/internal/session"
	"github.com/x1024/shkolo-cli/internal/validators"
	"github.com/x1024/shkolo-cli/models"
)

// BuildInfo carries the version stamps injected at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// rawAPI is the one adapter call the CLI makes directly, without a
// service in between.
type rawAPI interface {
	Raw(ctx context.Context, req models.RawRequest) (*models.RawResponse, error)
}

// app holds the parsed global flags and the wired application. Commands
// reach everything through their *app receiver; tests inject stub
// services and buffers before running a command.
type app struct {
	build BuildInfo

	configFile string
	baseURL    string
	lang       string
	student    string
	jsonOut    bool
	refresh    bool
	noCache    bool
	cacheTTL   int

	cfg       *config.Config
	log       *logger.Logger
	raw       rawAPI
	sessions  session.Store
	db        *cache.DB
	repo      cache.Repository
	services  *service.Services
	validator validators.Validator

	text *render.Text
	json *render.JSON

	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
	in     *bufio.Reader
}

// Run executes the CLI with the process arguments and returns the exit
// code for main.
func Run(build BuildInfo) int {
	a := &app{
		build:  build,
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
	return a.run(os.Args[1:])
}

func (a *app) run(args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	defer a.close()
	if err := root.Execute(); err != nil {
		return a.fail(err)
	}
	return 0
}

// setup builds the application behind the parsed global flags. It runs
// as the persistent pre-run hook of every command except version. Tests
// that pre-wire services skip the construction and only get renderers
// bound to their buffers.
func (a *app) setup(cmd *cobra.Command) error {
	if a.services != nil {
		a.bind()
		return nil
	}

	overrides := &config.Config{JSONFilePath: a.configFile}
	overrides.App.BaseURL = a.baseURL
	overrides.App.Language = a.lang
	if a.cacheTTL > 0 {
		overrides.Cache.TTL = config.Duration{Duration: time.Duration(a.cacheTTL) * time.Second}
	}

	cfg, err := config.GetConfig(overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cfg.App.ConfigDir, cfg.Log.File, cfg.Log.Level)

	api, err := adapter.NewShkoloAdapter(cfg.App, a.log)
	if err != nil {
		return err
	}
	a.raw = api
	a.sessions = session.NewFileStore(cfg.SessionPath())
	a.repo = a.openCache(cmd.Context())
	a.services = service.NewServices(api, a.sessions, a.repo, cfg, a.log)
	a.bind()
	return nil
}

func (a *app) bind() {
	a.text = render.NewText(a.stdout)
	a.json = render.NewJSON(a.stdout)
	if a.validator == nil {
		a.validator = validators.NewRequestValidator()
	}
}

// openCache connects the sqlite response cache. Any failure only
// disables caching; every command still works against the live API.
func (a *app) openCache(ctx context.Context) cache.Repository {
	if a.cfg.Cache.Disabled {
		return nil
	}
	db, err := cache.NewConnectSQLite(ctx, a.cfg.CacheDBPath(), a.log)
	if err != nil {
		a.log.Debug().Err(err).Msg("cache unavailable, continuing without it")
		return nil
	}
	if err := db.Migrate(); err != nil {
		a.log.Debug().Err(err).Msg("cache migration failed, continuing without it")
		_ = db.Close()
		return nil
	}
	a.db = db
	return cache.NewRepository(db, a.log)
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// ctx returns the command context with the logger attached.
func (a *app) ctx(cmd *cobra.Command) context.Context {
	if a.log == nil {
		return cmd.Context()
	}
	return a.log.WithContext(cmd.Context())
}

// restore loads the saved session into the adapter. Report commands
// call it before fetching anything.
func (a *app) restore(ctx context.Context) error {
	_, err := a.services.Auth.Restore(ctx)
	return err
}

func (a *app) fetchOptions() service.FetchOptions {
	return service.FetchOptions{Refresh: a.refresh, NoCache: a.noCache}
}

// readLine reads one trimmed line from stdin. A final unterminated
// line is accepted so piped input without a trailing newline works.
func (a *app) readLine() (string, error) {
	if a.in == nil {
		a.in = bufio.NewReader(a.stdin)
	}
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
