package errors

import "errors"

var (
	ErrInvalidKaryaInput = errors.New("invalid karya input")
	ErrHashRequired      = errors.New("hash is required")
	ErrFileHashExists    = errors.New("a karya with this file hash already exists")
	ErrKaryaNotFound     = errors.New("karya not found")
	ErrOwnerNotFound     = errors.New("karya owner not found")
)
