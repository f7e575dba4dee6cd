package config

import (
	"fmt"
	"net/url"
)

func (c *Config) validate() error {
	if err := c.App.validate(); err != nil {
		return err
	}
	return c.Cache.validate()
}

func (a App) validate() error {
	if a.BaseURL == "" {
		return fmt.Errorf("%w: base URL is empty", ErrInvalidAppConfigs)
	}
	if _, err := url.ParseRequestURI(a.BaseURL); err != nil {
		return fmt.Errorf("%w: base URL %q is not a valid URL", ErrInvalidAppConfigs, a.BaseURL)
	}
	if a.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAppConfigs)
	}
	return nil
}

func (c Cache) validate() error {
	if c.TTL.Duration < 0 {
		return fmt.Errorf("%w: cache ttl must not be negative", ErrInvalidCacheConfigs)
	}
	return nil
}
