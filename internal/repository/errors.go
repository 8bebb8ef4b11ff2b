package repository

import "errors"

// ErrNotFound is returned when a stored document or row does not exist.
var ErrNotFound = errors.New("not found")
