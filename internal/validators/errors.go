package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyIDToken  = errors.New("google id token is required")
	ErrInvalidMethod = errors.New("invalid HTTP method")
	ErrEmptyEndpoint = errors.New("endpoint is required")
	ErrInvalidJSON   = errors.New("invalid JSON data")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidPage   = errors.New("page must be a positive number")
)
