package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "SHKOLO_"

// configBuilder assembles a Config from several sources. Sources are
// applied in priority order and merged with mergo, so fields set by an
// earlier source are never overwritten by a later one.
type configBuilder struct {
	cfg  *Config
	errs []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{cfg: &Config{}}
}

// withOverrides merges explicit overrides, typically collected from
// command-line flags. Highest priority source.
func (b *configBuilder) withOverrides(overrides *Config) *configBuilder {
	if overrides == nil {
		return b
	}
	if err := mergo.Merge(b.cfg, *overrides); err != nil {
		b.errs = append(b.errs, fmt.Errorf("merge overrides: %w", err))
	}
	return b
}

// withEnv merges SHKOLO_-prefixed environment variables. A .env file in
// the config directory is loaded into the environment first when present,
// without overriding variables that are already set. The directory is
// resolved before parsing, so a config dir set only through the
// environment still has its .env picked up.
func (b *configBuilder) withEnv() *configBuilder {
	_ = godotenv.Load(filepath.Join(b.envDir(), ".env"))

	var fromEnv Config
	if err := env.ParseWithOptions(&fromEnv, env.Options{Prefix: envPrefix}); err != nil {
		b.errs = append(b.errs, fmt.Errorf("parse environment: %w", err))
		return b
	}
	if err := mergo.Merge(b.cfg, fromEnv); err != nil {
		b.errs = append(b.errs, fmt.Errorf("merge environment: %w", err))
	}
	return b
}

// withJSON merges values from the JSON config file. A path configured via
// flag or environment must exist; the default config.json is optional.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.cfg.JSONFilePath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(b.configDir(), configFileName)
	}

	fromJSON, err := readJSONConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return b
		}
		b.errs = append(b.errs, err)
		return b
	}
	if err := mergo.Merge(b.cfg, fromJSON); err != nil {
		b.errs = append(b.errs, fmt.Errorf("merge json config: %w", err))
	}
	return b
}

// withDefaults fills any fields left unset by the other sources.
func (b *configBuilder) withDefaults() *configBuilder {
	defaults := Config{
		App: App{
			BaseURL:        defaultBaseURL,
			Language:       defaultLanguage,
			UserAgent:      defaultUserAgent,
			RequestTimeout: Duration{defaultRequestTimeout},
			ConfigDir:      defaultConfigDir(),
		},
		Cache: Cache{
			TTL: Duration{defaultCacheTTL},
		},
		Log: Log{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
	if err := mergo.Merge(b.cfg, defaults); err != nil {
		b.errs = append(b.errs, fmt.Errorf("merge defaults: %w", err))
	}
	return b
}

func (b *configBuilder) build() (*Config, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return b.cfg, nil
}

// configDir returns the directory resolved so far, falling back to the
// default when no earlier source has set one.
func (b *configBuilder) configDir() string {
	if b.cfg.App.ConfigDir != "" {
		return b.cfg.App.ConfigDir
	}
	return defaultConfigDir()
}

// envDir resolves the config directory for locating the .env file: a
// flag override wins, then the raw environment variable, then the
// default location.
func (b *configBuilder) envDir() string {
	if b.cfg.App.ConfigDir != "" {
		return b.cfg.App.ConfigDir
	}
	if dir := os.Getenv(envPrefix + "APP_CONFIG_DIR"); dir != "" {
		return dir
	}
	return defaultConfigDir()
}
