package config

import "errors"

var (
	ErrInvalidAppConfigs   = errors.New("invalid app configs")
	ErrInvalidCacheConfigs = errors.New("invalid cache configs")
)
