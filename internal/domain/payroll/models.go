package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one payroll line item per employee per calendar-month period,
// upserted so regenerating a period replaces computed fields.
type Item struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	Period         string          `json:"period"`
	Status         string          `json:"status"`
	PayType        string          `json:"payType"`
	Currency       string          `json:"currency"`
	BasePay        decimal.Decimal `json:"basePay"`
	GrossPay       decimal.Decimal `json:"grossPay"`
	NetPay         decimal.Decimal `json:"netPay"`
	TimesheetHours decimal.Decimal `json:"timesheetHours"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

type Skip struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}

// Report lists what a period run produced and which employees it had to
// pass over. A skip never aborts the run for other employees.
type Report struct {
	Period    string `json:"period"`
	Generated int    `json:"generated"`
	Skipped   []Skip `json:"skipped,omitempty"`
}
