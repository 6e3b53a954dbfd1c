package internal

import "errors"

var (
	// ErrDuplicateUsername is returned by registration when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username/password don't match a user.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStorageUnavailable wraps storage-level failures at store boundaries.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
