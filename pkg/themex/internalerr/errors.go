package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStoreClosed   = errors.New("store closed")
	ErrInvalidConfig = errors.New("invalid configuration")
)
