package errors

import "errors"

var (
	ErrMissingAuthHeader = errors.New("missing or invalid authorization header")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrUserNotFound      = errors.New("user not found in database")
	ErrInvalidRequest    = errors.New("invalid request")
)
