package repositories

import "errors"

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")
