// Package usecase implements the business logic for the clock feature.
package usecase

import "errors"

var (
	// ErrInvalidUserID is returned when an operation is attempted without a user id.
	ErrInvalidUserID = errors.New("user id is required")

	// ErrInvalidClockType is returned when the clock type is not clock-in or clock-out.
	ErrInvalidClockType = errors.New("unknown clock type")

	// ErrInvalidDate is returned when a date parameter is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrDuplicateEvent is returned when an event with the same (user id, timestamp)
	// already exists. The caller decides whether to retry with a fresh timestamp.
	ErrDuplicateEvent = errors.New("clock event already exists for this user and timestamp")

	// ErrStoreUnavailable is returned when the event store fails transiently.
	// The core never retries internally; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("event store unavailable")
)
