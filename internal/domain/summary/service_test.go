package summary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/domain/employee"
	"worktime/internal/domain/holiday"
	"worktime/internal/domain/policy"
	"worktime/internal/domain/tracking"
	"worktime/internal/platform/clock"
)

type memSummaries struct {
	rows map[string]Summary
}

func summaryKey(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format("2006-01-02")
}

func (m *memSummaries) Upsert(_ context.Context, sum Summary) error {
	m.rows[summaryKey(sum.EmployeeID, sum.WorkDate)] = sum
	return nil
}

func (m *memSummaries) ListRange(_ context.Context, employeeID string, from, to time.Time) ([]Summary, error) {
	var out []Summary
	for _, sum := range m.rows {
		if sum.EmployeeID == employeeID && !sum.WorkDate.Before(from) && !sum.WorkDate.After(to) {
			out = append(out, sum)
		}
	}
	return out, nil
}

type memSessions struct {
	seconds map[string]int64
}

func (m *memSessions) GetForDate(_ context.Context, employeeID string, workDate time.Time) (tracking.Session, error) {
	secs, ok := m.seconds[summaryKey(employeeID, workDate)]
	if !ok {
		return tracking.Session{}, tracking.ErrNoSession
	}
	return tracking.Session{
		ID:            "sess-" + employeeID,
		EmployeeID:    employeeID,
		WorkDate:      workDate,
		ActiveSeconds: secs,
	}, nil
}

type memEmployees struct {
	emp  employee.Employee
	comp employee.Compensation
}

func (m *memEmployees) GetEmployee(_ context.Context, employeeID string) (employee.Employee, error) {
	if employeeID != m.emp.ID {
		return employee.Employee{}, employee.ErrNotFound
	}
	return m.emp, nil
}

func (m *memEmployees) ListActiveEmployees(context.Context) ([]employee.Employee, error) {
	return []employee.Employee{m.emp}, nil
}

func (m *memEmployees) ActiveCompensationAsOf(context.Context, string, time.Time) (employee.Compensation, error) {
	if m.comp.ID == "" {
		return employee.Compensation{}, employee.ErrNoActiveCompensation
	}
	return m.comp, nil
}

type memCalendar struct {
	paid map[string]bool
}

func (m *memCalendar) IsPaidHoliday(_ context.Context, date time.Time) (bool, error) {
	return m.paid[date.Format("2006-01-02")], nil
}

func (m *memCalendar) ListPaidHolidays(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if m.paid[d.Format("2006-01-02")] {
			out = append(out, holiday.Holiday{Date: d, Paid: true})
		}
	}
	return out, nil
}

type fixture struct {
	svc       *Service
	summaries *memSummaries
	sessions  *memSessions
	calendar  *memCalendar
	clk       *clock.Fixed
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	summaries := &memSummaries{rows: map[string]Summary{}}
	sessions := &memSessions{seconds: map[string]int64{}}
	calendar := &memCalendar{paid: map[string]bool{}}
	employees := &memEmployees{
		emp: employee.Employee{
			ID:              "emp-1",
			EmploymentType:  policy.EmploymentFullTime,
			WorkArrangement: policy.ArrangementRemote,
			Status:          employee.StatusActive,
		},
		comp: employee.Compensation{
			ID:         "comp-1",
			EmployeeID: "emp-1",
			SalaryType: employee.SalaryTypeHourly,
			Rate:       decimal.NewFromInt(25),
			Currency:   "EUR",
			Active:     true,
		},
	}
	clk := clock.NewFixed(time.Date(2026, time.May, 11, 18, 0, 0, 0, time.UTC))
	svc := NewService(summaries, sessions, employees, calendar, policy.New(nil), clk)
	return fixture{svc: svc, summaries: summaries, sessions: sessions, calendar: calendar, clk: clk}
}

func TestSummarizeFullDayIsCapped(t *testing.T) {
	fx := newFixture(t)
	date := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	// 9 hours worked against 8 required: still the full-day amount.
	fx.sessions.seconds[summaryKey("emp-1", date)] = 9 * 3600

	sum, err := fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.Equal(t, int64(32400), sum.ActiveSeconds)
	assert.Equal(t, int64(28800), sum.RequiredSeconds)
	assert.Equal(t, "200.00", sum.Amount.StringFixed(2))
	assert.Equal(t, "EUR", sum.Currency)
}

func TestSummarizeProportionalShortfall(t *testing.T) {
	fx := newFixture(t)
	date := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	fx.sessions.seconds[summaryKey("emp-1", date)] = 4 * 3600

	sum, err := fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.Equal(t, "100.00", sum.Amount.StringFixed(2))
}

func TestSummarizeNoSessionIsZero(t *testing.T) {
	fx := newFixture(t)
	date := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)

	sum, err := fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.Zero(t, sum.ActiveSeconds)
	assert.True(t, sum.Amount.IsZero())
}

func TestSummarizePaidHolidayFullPayGuarantee(t *testing.T) {
	fx := newFixture(t)
	date := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	fx.calendar.paid["2026-05-01"] = true

	// Zero presence on a paid holiday still pays the full day.
	sum, err := fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.Zero(t, sum.ActiveSeconds)
	assert.Equal(t, "200.00", sum.Amount.StringFixed(2))

	// Partial presence reports its seconds but the amount is unchanged.
	fx.sessions.seconds[summaryKey("emp-1", date)] = 3600
	sum, err = fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), sum.ActiveSeconds)
	assert.Equal(t, "200.00", sum.Amount.StringFixed(2))
}

func TestSummarizeUpsertsNotDuplicates(t *testing.T) {
	fx := newFixture(t)
	date := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	fx.sessions.seconds[summaryKey("emp-1", date)] = 3600

	_, err := fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)

	fx.sessions.seconds[summaryKey("emp-1", date)] = 7200
	_, err = fx.svc.Summarize(context.Background(), "emp-1", date)
	require.NoError(t, err)

	require.Len(t, fx.summaries.rows, 1)
	assert.Equal(t, int64(7200), fx.summaries.rows[summaryKey("emp-1", date)].ActiveSeconds)
}

func TestBackfillCollectsFailures(t *testing.T) {
	fx := newFixture(t)
	from := time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.May, 13, 0, 0, 0, 0, time.UTC)
	fx.sessions.seconds[summaryKey("emp-1", from)] = 3600

	report, err := fx.svc.Backfill(context.Background(), "emp-1", from, to)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Generated)
	assert.Empty(t, report.Failed)

	_, err = fx.svc.Backfill(context.Background(), "emp-1", to, from)
	require.Error(t, err)
}
