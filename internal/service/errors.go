package service

import "errors"

// Every failure below is a normal request outcome, mapped once to a status at
// the handler boundary. Nothing is retried or swallowed.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("validation failed")
	ErrSelfFollow     = errors.New("cannot follow self")
	ErrBadCredentials = errors.New("invalid credentials")
)
