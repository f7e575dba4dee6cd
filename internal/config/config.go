package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBaseURL        = "https://api.shkolo.bg"
	defaultLanguage       = "bg"
	defaultUserAgent      = "Shkolo-app-iOS/1.43.3"
	defaultRequestTimeout = 30 * time.Second
	defaultCacheTTL       = time.Hour
	defaultLogLevel       = "warn"
	defaultLogFile        = "shkolo.log"

	configDirName   = ".shkolo"
	configFileName  = "config.json"
	sessionFileName = "token.json"
	cacheFileName   = "cache.db"
)

// Config is the aggregate application configuration.
type Config struct {
	App   App   `json:"app" envPrefix:"APP_"`
	Cache Cache `json:"cache" envPrefix:"CACHE_"`
	Log   Log   `json:"log" envPrefix:"LOG_"`

	// JSONFilePath points to an explicit JSON config file. Set via the
	// SHKOLO_CONFIG environment variable or the --config flag.
	JSONFilePath string `json:"-" env:"CONFIG"`
}

// App holds settings for talking to the Shkolo API.
type App struct {
	BaseURL        string   `json:"base_url" env:"BASE_URL"`
	Language       string   `json:"language" env:"LANGUAGE"`
	UserAgent      string   `json:"user_agent" env:"USER_AGENT"`
	RequestTimeout Duration `json:"request_timeout" env:"REQUEST_TIMEOUT"`
	ConfigDir      string   `json:"config_dir" env:"CONFIG_DIR"`
}

// Cache holds settings for the local response cache.
type Cache struct {
	Disabled bool     `json:"disabled" env:"DISABLED"`
	TTL      Duration `json:"ttl" env:"TTL"`
	File     string   `json:"file" env:"FILE"`
}

// Log holds logging settings.
type Log struct {
	Level string `json:"level" env:"LEVEL"`
	File  string `json:"file" env:"FILE"`
}

// GetConfig assembles the configuration from flag overrides, environment
// variables, the JSON config file, and defaults, then validates the result.
// overrides may be nil.
func GetConfig(overrides *Config) (*Config, error) {
	cfg, err := newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SessionPath returns the path of the stored session token file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.App.ConfigDir, sessionFileName)
}

// CacheDBPath returns the path of the sqlite cache database.
func (c *Config) CacheDBPath() string {
	if c.Cache.File != "" {
		return c.Cache.File
	}
	return filepath.Join(c.App.ConfigDir, cacheFileName)
}

// defaultConfigDir resolves ~/.shkolo, falling back to a relative
// directory when the home directory cannot be determined.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}
