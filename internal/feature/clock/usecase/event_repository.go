package usecase

import (
	"context"

	"kintai_backend/internal/feature/clock/domain/entity"
)

// Order は打刻履歴の並び順を表します。
type Order int

const (
	// Descending は新しい打刻から順に返します（履歴表示のデフォルト）。
	Descending Order = iota
	// Ascending は古い打刻から順に返します。
	Ascending
)

// EventRepository abstracts the persistence layer for clock events.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EventRepository interface {
	// Create persists a new event. It returns ErrDuplicateEvent if an event
	// with the same (user id, timestamp) already exists, and wraps
	// ErrStoreUnavailable on any other storage failure.
	Create(ctx context.Context, event *entity.ClockEvent) error

	// FindByUser returns all events for the user ordered by timestamp.
	// A user with no events yields an empty slice, not an error.
	FindByUser(ctx context.Context, userID string, order Order) ([]entity.ClockEvent, error)

	// ListByDate returns every user's events on the given calendar date,
	// ordered by ascending timestamp.
	ListByDate(ctx context.Context, date string) ([]entity.ClockEvent, error)

	// DeleteByUser removes all events for the user and returns the number deleted.
	// Only the administrative reset tooling uses this.
	DeleteByUser(ctx context.Context, userID string) (int64, error)

	// DeleteAll removes every event and returns the number deleted.
	// Only the administrative reset tooling uses this.
	DeleteAll(ctx context.Context) (int64, error)
}
