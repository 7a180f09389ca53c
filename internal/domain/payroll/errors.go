package payroll

import "errors"

var (
	ErrInvalidPeriodKey  = errors.New("period key must be YYYY-MM")
	ErrItemNotFound      = errors.New("payroll item not found")
	ErrUnknownSalaryType = errors.New("unknown salary type")
)
