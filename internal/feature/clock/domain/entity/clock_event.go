// Package entity defines the domain entities for the clock feature.
package entity

// ClockType は打刻の種別（出勤・退勤）を表します。
type ClockType string

const (
	// ClockIn は出勤打刻を表します。
	ClockIn ClockType = "clock-in"
	// ClockOut は退勤打刻を表します。
	ClockOut ClockType = "clock-out"
)

// IsValid は既知の打刻種別かどうかを返します。
func (t ClockType) IsValid() bool {
	return t == ClockIn || t == ClockOut
}

// ClockEvent represents a single clock-in or clock-out punch.
// Events are append-only: once created they are never updated, and the
// only deletion path is the administrative environment reset.
type ClockEvent struct {
	ID        string    // Server-assigned unique identifier (UUID)
	UserID    string    // Owner of the punch
	Timestamp string    // ISO-8601 instant, millisecond precision, always UTC
	Date      string    // Calendar date (YYYY-MM-DD) derived from Timestamp in UTC
	Type      ClockType // "clock-in" or "clock-out"
	Location  *string   // Optional free-text location
	DeviceID  *string   // Optional free-text device identifier
}
