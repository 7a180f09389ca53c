package tracking

import (
	"context"
	"time"
)

type StoreAPI interface {
	// GetForDate returns the session row for (employee, workDate), or
	// ErrNoSession when none exists.
	GetForDate(ctx context.Context, employeeID string, workDate time.Time) (Session, error)

	// Create inserts the session, or returns the existing row when another
	// writer got there first. Get-or-create, never a duplicate.
	Create(ctx context.Context, sess Session) (Session, error)

	// Mutate applies fn to the session row under a per-row lock so concurrent
	// heartbeats for the same employee cannot lose an update. fn returning an
	// error aborts the write and the row is left untouched.
	Mutate(ctx context.Context, employeeID string, workDate time.Time, fn func(sess *Session) error) (Session, error)

	// SumActiveSeconds aggregates active seconds over an inclusive date range.
	SumActiveSeconds(ctx context.Context, employeeID string, from, to time.Time) (int64, error)

	// CountSessions reports how many session rows exist in the range.
	CountSessions(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
