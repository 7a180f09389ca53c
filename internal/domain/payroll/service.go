package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/holiday"
	"worktime/internal/domain/policy"
	"worktime/internal/platform/clock"
	"worktime/internal/platform/metrics"
)

// SessionAggregator is the slice of the session store the generator reads.
type SessionAggregator interface {
	SumActiveSeconds(ctx context.Context, employeeID string, from, to time.Time) (int64, error)
	CountSessions(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}

type Service struct {
	store     StoreAPI
	sessions  SessionAggregator
	employees employee.StoreAPI
	holidays  holiday.Calendar
	policy    *policy.Policy
	clock     clock.Clock
}

func NewService(store StoreAPI, sessions SessionAggregator, employees employee.StoreAPI, holidays holiday.Calendar, pol *policy.Policy, clk clock.Clock) *Service {
	return &Service{
		store:     store,
		sessions:  sessions,
		employees: employees,
		holidays:  holidays,
		policy:    pol,
		clock:     clk,
	}
}

// GeneratePeriod computes one payroll line item per active employee for the
// given YYYY-MM period. Regeneration replaces existing items, never
// duplicates them. Per-employee failures are skipped and reported; the run
// continues for everyone else.
func (s *Service) GeneratePeriod(ctx context.Context, periodKey string) (Report, error) {
	start, end, err := ParsePeriod(periodKey)
	if err != nil {
		return Report{}, err
	}

	employees, err := s.employees.ListActiveEmployees(ctx)
	if err != nil {
		return Report{}, err
	}

	paidHolidays, err := s.holidays.ListPaidHolidays(ctx, start, end)
	if err != nil {
		return Report{}, err
	}

	report := Report{Period: periodKey}
	for _, emp := range employees {
		item, err := s.generateFor(ctx, emp, periodKey, start, end, paidHolidays)
		if err != nil {
			slog.Warn("payroll generation skipped employee", "employeeId", emp.ID, "period", periodKey, "err", err)
			report.Skipped = append(report.Skipped, Skip{EmployeeID: emp.ID, Reason: err.Error()})
			continue
		}
		if err := s.store.UpsertItem(ctx, item); err != nil {
			return report, err
		}
		report.Generated++
	}

	metrics.RecordPayrollRun(len(report.Skipped))
	slog.Info("payroll period generated", "period", periodKey, "generated", report.Generated, "skipped", len(report.Skipped))
	return report, nil
}

func (s *Service) generateFor(ctx context.Context, emp employee.Employee, periodKey string, start, end time.Time, paidHolidays []holiday.Holiday) (Item, error) {
	comp, err := s.employees.ActiveCompensationAsOf(ctx, emp.ID, end)
	if err != nil {
		return Item{}, err
	}

	item := Item{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		Period:      periodKey,
		Status:      StatusDraft,
		PayType:     comp.SalaryType,
		Currency:    comp.Currency,
		BasePay:     comp.Rate,
		GeneratedAt: s.clock.Now(),
	}

	switch comp.SalaryType {
	case employee.SalaryTypeHourly:
		hours, err := s.hourlyTimesheet(ctx, emp, start, end, periodKey, paidHolidays)
		if err != nil {
			return Item{}, err
		}
		item.TimesheetHours = hours
		item.GrossPay, item.NetPay = HourlyPay(hours, comp.Rate)
	case employee.SalaryTypeMonthly, employee.SalaryTypeProjectBase:
		// Flat amounts; not driven by session accrual.
		item.TimesheetHours = decimal.Zero
		item.GrossPay = comp.Rate.Round(2)
		item.NetPay = item.GrossPay
	default:
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownSalaryType, comp.SalaryType)
	}

	return item, nil
}

// hourlyTimesheet sums every active second in the period, uncapped, plus a
// holiday credit for each paid holiday granted to the employee's
// classification. Credit stacks with same-day sessions. Legacy timesheet
// hours are consulted only when the employee has no session at all in the
// period; a single live session supersedes legacy data entirely.
func (s *Service) hourlyTimesheet(ctx context.Context, emp employee.Employee, start, end time.Time, periodKey string, paidHolidays []holiday.Holiday) (decimal.Decimal, error) {
	sessionCount, err := s.sessions.CountSessions(ctx, emp.ID, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	var credit int64
	if emp.IsRemote() && len(paidHolidays) > 0 {
		perHoliday, err := s.policy.HolidayCreditSeconds(emp.Classification())
		if err != nil {
			return decimal.Zero, err
		}
		credit = int64(perHoliday) * int64(len(paidHolidays))
	}

	if sessionCount == 0 {
		legacy, err := s.store.LegacyHours(ctx, emp.ID, periodKey)
		if err != nil {
			return decimal.Zero, err
		}
		if legacy.IsPositive() {
			return legacy, nil
		}
		return HourlyHours(0, credit), nil
	}

	active, err := s.sessions.SumActiveSeconds(ctx, emp.ID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return HourlyHours(active, credit), nil
}

// ListItems exposes generated line items for a period.
func (s *Service) ListItems(ctx context.Context, period string) ([]Item, error) {
	return s.store.ListItems(ctx, period)
}
