package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"worktime/internal/domain/employee"
)

func TestDailyAmountCappedAtFullDay(t *testing.T) {
	base := decimal.NewFromInt(320)

	assert.True(t, DailyAmount(28800, 28800, base).Equal(base))
	// Over-presence never pays extra in the daily path.
	assert.True(t, DailyAmount(36000, 28800, base).Equal(base))
}

func TestDailyAmountProportionalWithRounding(t *testing.T) {
	base := decimal.NewFromInt(100)

	amount := DailyAmount(10000, 28800, base)
	assert.Equal(t, "34.72", amount.StringFixed(2))

	half := DailyAmount(14400, 28800, base)
	assert.Equal(t, "50.00", half.StringFixed(2))

	assert.True(t, DailyAmount(0, 28800, base).IsZero())
}

func TestDailyAmountZeroRequiredIsZero(t *testing.T) {
	assert.True(t, DailyAmount(3600, 0, decimal.NewFromInt(100)).IsZero())
}

func TestDailyBaseHourly(t *testing.T) {
	comp := employee.Compensation{SalaryType: employee.SalaryTypeHourly, Rate: decimal.NewFromInt(100)}

	base := DailyBase(comp, 14400, time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "400.00", base.StringFixed(2))
}

func TestDailyBaseMonthlySpreadsOverWeekdays(t *testing.T) {
	comp := employee.Compensation{SalaryType: employee.SalaryTypeMonthly, Rate: decimal.NewFromInt(4200)}

	// May 2026 has 21 weekdays.
	base := DailyBase(comp, 28800, time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "200.00", base.StringFixed(2))
}

func TestWeekdaysInMonth(t *testing.T) {
	assert.Equal(t, 21, WeekdaysInMonth(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 20, WeekdaysInMonth(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)))
}
