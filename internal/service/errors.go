package service

import "errors"

// ErrNotAuthenticated is returned when an operation needs a saved
// session and none exists.
var ErrNotAuthenticated = errors.New("not authenticated")
