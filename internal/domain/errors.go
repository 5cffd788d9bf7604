package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrUnsupportedKind = errors.New("unsupported asset kind")
	ErrUnauthorized    = errors.New("unauthorized")
)
