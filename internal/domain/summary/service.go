package summary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/holiday"
	"worktime/internal/domain/policy"
	"worktime/internal/domain/tracking"
	"worktime/internal/platform/clock"
)

// SessionSource is the slice of the session store this generator reads.
type SessionSource interface {
	GetForDate(ctx context.Context, employeeID string, workDate time.Time) (tracking.Session, error)
}

type Service struct {
	store     StoreAPI
	sessions  SessionSource
	employees employee.StoreAPI
	holidays  holiday.Calendar
	policy    *policy.Policy
	clock     clock.Clock
}

func NewService(store StoreAPI, sessions SessionSource, employees employee.StoreAPI, holidays holiday.Calendar, pol *policy.Policy, clk clock.Clock) *Service {
	return &Service{
		store:     store,
		sessions:  sessions,
		employees: employees,
		holidays:  holidays,
		policy:    pol,
		clock:     clk,
	}
}

// Summarize aggregates one day's presence into a capped, proportional pay
// estimate, persists the summary row and returns it. On a paid holiday the
// recorded seconds are reported as-is but the amount is the full daily base,
// regardless of presence.
func (s *Service) Summarize(ctx context.Context, employeeID string, date time.Time) (Summary, error) {
	date = tracking.WorkDateOf(date)

	emp, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return Summary{}, err
	}

	required, err := s.policy.RequiredSeconds(emp.Classification())
	if err != nil {
		return Summary{}, err
	}

	comp, err := s.employees.ActiveCompensationAsOf(ctx, employeeID, date)
	if err != nil {
		return Summary{}, err
	}

	var active int64
	sess, err := s.sessions.GetForDate(ctx, employeeID, date)
	switch {
	case err == nil:
		active = sess.ActiveSeconds
	case errors.Is(err, tracking.ErrNoSession):
		// Absence of presence data is a valid zero.
	default:
		return Summary{}, err
	}

	dailyBase := DailyBase(comp, int64(required), date)

	paid, err := s.holidays.IsPaidHoliday(ctx, date)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		EmployeeID:      employeeID,
		WorkDate:        date,
		ActiveSeconds:   active,
		RequiredSeconds: int64(required),
		Currency:        comp.Currency,
		GeneratedAt:     s.clock.Now(),
	}
	if paid {
		// Full-day-pay guarantee for paid holidays.
		if _, err := s.policy.HolidayCreditSeconds(emp.Classification()); err != nil {
			return Summary{}, err
		}
		sum.Amount = dailyBase.Round(2)
	} else {
		sum.Amount = DailyAmount(active, int64(required), dailyBase)
	}

	if err := s.store.Upsert(ctx, sum); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Today is the live dashboard preview for the current day.
func (s *Service) Today(ctx context.Context, employeeID string) (Summary, error) {
	return s.Summarize(ctx, employeeID, s.clock.Now())
}

// Backfill regenerates summaries over an inclusive date range. Per-day
// failures are collected, not fatal, so one bad day cannot block a
// reconciliation run.
func (s *Service) Backfill(ctx context.Context, employeeID string, from, to time.Time) (BackfillReport, error) {
	from = tracking.WorkDateOf(from)
	to = tracking.WorkDateOf(to)
	if to.Before(from) {
		return BackfillReport{}, errors.New("backfill range end before start")
	}

	var report BackfillReport
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if _, err := s.Summarize(ctx, employeeID, d); err != nil {
			slog.Warn("summary backfill failed for day", "employeeId", employeeID, "date", d.Format("2006-01-02"), "err", err)
			report.Failed = append(report.Failed, d.Format("2006-01-02"))
			continue
		}
		report.Generated++
	}
	return report, nil
}

// ListRange exposes stored summaries for reporting.
func (s *Service) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Summary, error) {
	return s.store.ListRange(ctx, employeeID, from, to)
}
