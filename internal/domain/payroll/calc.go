package payroll

import "github.com/shopspring/decimal"

var secondsPerHour = decimal.NewFromInt(3600)

// HourlyHours converts accumulated active seconds plus synthetic holiday
// credit seconds into timesheet hours. Unlike the daily summary path there is
// no daily cap: every accumulated second is paid.
func HourlyHours(activeSeconds, holidayCreditSeconds int64) decimal.Decimal {
	return decimal.NewFromInt(activeSeconds + holidayCreditSeconds).Div(secondsPerHour)
}

// HourlyPay computes gross and net wage for the hourly branch. The engine
// applies no deductions; net equals gross.
func HourlyPay(hours, rate decimal.Decimal) (gross, net decimal.Decimal) {
	gross = hours.Mul(rate).Round(2)
	return gross, gross
}
