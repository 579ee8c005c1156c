package repo

import "errors"

// ErrNotFound is returned when a row is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when an insert hits a unique constraint.
var ErrAlreadyExists = errors.New("already exists")
