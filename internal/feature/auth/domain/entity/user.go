// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents an account that can log in and record clock events.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// LoginID is the identifier used for authentication (e.g. "user001").
	// It must be unique across all users and is the owner id on clock events.
	LoginID string `gorm:"uniqueIndex;size:64;not null"`

	// Name is the display name of the user.
	Name string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
