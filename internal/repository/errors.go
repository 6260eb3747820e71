package repository

import "errors"

// ErrNotConfigured is returned when a store is used before it was opened or after Close.
var ErrNotConfigured = errors.New("storage is not configured")
