package summary

import (
	"context"
	"time"
)

type StoreAPI interface {
	// Upsert replaces the summary row for (employee, work date).
	Upsert(ctx context.Context, sum Summary) error
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Summary, error)
}
