// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used throughout shkolo-cli.
//
// The Logger type embeds zerolog.Logger, so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// The CLI keeps stdout reserved for report output and writes its JSON log
// to a file inside the config directory; every run is stamped with a
// random run id so overlapping invocations stay distinguishable.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing to the given file inside dir. The
// directory is created on demand; when the file cannot be opened the
// logger falls back to stderr so stdout stays clean for command output.
//
// level accepts the zerolog level names ("debug", "info", "warn", ...);
// unknown values default to warn. Every entry carries a "run_id" field
// with a per-process random id.
func New(dir, file, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	var out *os.File = os.Stderr
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err == nil {
			path := filepath.Join(dir, file)
			if f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); ferr == nil {
				out = f
			}
		}
	}

	logger := zerolog.New(out).Level(lvl).With().
		Str("run_id", uuid.NewString()).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests and for code paths constructed before the
// configuration is available.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext stores the logger in ctx for retrieval via FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// log.Ctx helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
