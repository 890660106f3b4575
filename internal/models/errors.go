package models

import "errors"

// Error taxonomy shared by services and handlers. Services wrap these with
// context via fmt.Errorf("...: %w", ...); handlers match with errors.Is to
// pick the response status.
var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicate       = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("catalog upstream failure")
)
