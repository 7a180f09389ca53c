package payroll

import (
	"fmt"
	"time"
)

// ParsePeriod resolves a YYYY-MM period key to its inclusive first and last
// calendar day.
func ParsePeriod(key string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, key)
	}
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}
