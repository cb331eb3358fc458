package errors

import "errors"

var (
	ErrInvalidLicenseInput = errors.New("invalid license input")
	ErrKaryaNotFound       = errors.New("karya not found")
)
