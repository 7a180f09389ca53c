package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"worktime/internal/domain/policy"
)

type Employee struct {
	ID              string                 `json:"id"`
	FirstName       string                 `json:"firstName"`
	LastName        string                 `json:"lastName"`
	Email           string                 `json:"email"`
	EmploymentType  policy.EmploymentType  `json:"employmentType"`
	WorkArrangement policy.WorkArrangement `json:"workArrangement"`
	Status          string                 `json:"status"`
}

func (e Employee) Classification() policy.Classification {
	return policy.Classification{
		EmploymentType:  e.EmploymentType,
		WorkArrangement: e.WorkArrangement,
	}
}

func (e Employee) IsRemote() bool {
	return e.WorkArrangement == policy.ArrangementRemote
}

// Compensation is the master record this engine reads but does not own.
// Exactly one record is active for an employee on any given date.
type Compensation struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	SalaryType    string          `json:"salaryType"`
	Rate          decimal.Decimal `json:"rate"`
	Currency      string          `json:"currency"`
	EffectiveFrom time.Time       `json:"effectiveFrom"`
	EffectiveTo   *time.Time      `json:"effectiveTo,omitempty"`
	Active        bool            `json:"active"`
}
