package employee

import (
	"context"
	"time"
)

type StoreAPI interface {
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)
	ListActiveEmployees(ctx context.Context) ([]Employee, error)
	ActiveCompensationAsOf(ctx context.Context, employeeID string, asOf time.Time) (Compensation, error)
}
