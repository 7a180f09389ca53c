// Package holiday exposes read-only access to the paid-holiday calendar.
// No active seconds are ever recorded against a holiday; credit is synthetic
// and granted by the summary and payroll generators.
package holiday

import (
	"context"
	"time"
)

type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
	Paid bool      `json:"paid"`
}

type Calendar interface {
	IsPaidHoliday(ctx context.Context, date time.Time) (bool, error)
	ListPaidHolidays(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
