package services

import "errors"

// Service-level errors translated by the controllers into HTTP status codes.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSelfFollow         = errors.New("cannot follow yourself")
)
