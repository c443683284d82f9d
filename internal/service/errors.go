package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrAlreadySigned    = errors.New("contract already signed")
	ErrUpstream         = errors.New("external lookup failed")
)
