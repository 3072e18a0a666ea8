package model

import "errors"

// Domain failure kinds. Services return these (possibly wrapped); handlers
// map them to HTTP statuses with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")
)
