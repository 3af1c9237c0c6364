package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrAuthRequired = errors.New("login required")
	ErrUnavailable  = errors.New("backend unavailable")
)
