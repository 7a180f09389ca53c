package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type StoreAPI interface {
	// UpsertItem replaces the line item for (employee, period).
	UpsertItem(ctx context.Context, item Item) error
	ListItems(ctx context.Context, period string) ([]Item, error)
	GetItem(ctx context.Context, itemID string) (Item, error)
	// LegacyHours returns externally imported timesheet hours for the period,
	// zero when none were recorded.
	LegacyHours(ctx context.Context, employeeID, period string) (decimal.Decimal, error)
}
