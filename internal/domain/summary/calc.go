package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"worktime/internal/domain/employee"
)

var secondsPerHour = decimal.NewFromInt(3600)

// DailyAmount is the capped, proportional pay for one day: the full daily
// base once required presence is met (never more), otherwise the worked
// fraction of it, rounded to the currency's two minor-unit decimals.
func DailyAmount(activeSeconds, requiredSeconds int64, dailyBase decimal.Decimal) decimal.Decimal {
	if requiredSeconds <= 0 {
		return decimal.Zero
	}
	if activeSeconds >= requiredSeconds {
		return dailyBase.Round(2)
	}
	return dailyBase.
		Mul(decimal.NewFromInt(activeSeconds)).
		Div(decimal.NewFromInt(requiredSeconds)).
		Round(2)
}

// DailyBase derives the full-day wage from the active compensation record.
// Hourly staff earn their rate over the required hours; monthly and
// project-based staff earn their base pay spread over the month's weekdays.
func DailyBase(comp employee.Compensation, requiredSeconds int64, workDate time.Time) decimal.Decimal {
	switch comp.SalaryType {
	case employee.SalaryTypeHourly:
		return comp.Rate.Mul(decimal.NewFromInt(requiredSeconds)).Div(secondsPerHour)
	default:
		return comp.Rate.Div(decimal.NewFromInt(int64(WeekdaysInMonth(workDate))))
	}
}

// WeekdaysInMonth counts Monday through Friday dates in the month of t.
func WeekdaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
