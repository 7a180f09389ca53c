package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the persisted daily record, upserted so historical regeneration
// replaces rather than duplicates.
type Summary struct {
	EmployeeID      string          `json:"employeeId"`
	WorkDate        time.Time       `json:"workDate"`
	ActiveSeconds   int64           `json:"activeSeconds"`
	RequiredSeconds int64           `json:"requiredSeconds"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// BackfillReport describes a historical regeneration run.
type BackfillReport struct {
	Generated int      `json:"generated"`
	Failed    []string `json:"failed,omitempty"`
}
