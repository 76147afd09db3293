// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by login id or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrLoginIDAlreadyExists is returned when attempting to create a user with a login id that already exists.
	ErrLoginIDAlreadyExists = errors.New("login id already exists")

	// ErrInvalidCredentials is returned when the login id or password is incorrect.
	// The same error is used for both cases to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid login id or password")
)
