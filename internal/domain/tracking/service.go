package tracking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"worktime/internal/domain/employee"
	"worktime/internal/platform/clock"
	"worktime/internal/platform/metrics"
)

// DefaultIdleCutoff is the largest heartbeat gap still counted as continuous
// active time. A gap at or above the cutoff is credited as zero in full; the
// first heartbeat after a long idle period never earns partial credit.
const DefaultIdleCutoff = 15 * time.Minute

type Service struct {
	store      StoreAPI
	employees  employee.StoreAPI
	clock      clock.Clock
	idleCutoff time.Duration
}

func NewService(store StoreAPI, employees employee.StoreAPI, clk clock.Clock, idleCutoff time.Duration) *Service {
	if idleCutoff <= 0 {
		idleCutoff = DefaultIdleCutoff
	}
	return &Service{store: store, employees: employees, clock: clk, idleCutoff: idleCutoff}
}

// Start opens the session for (employee, today). A second start on the same
// date is a no-op returning the existing row.
func (s *Service) Start(ctx context.Context, employeeID string) (Session, error) {
	if err := s.requireRemote(ctx, employeeID); err != nil {
		return Session{}, err
	}

	now := s.clock.Now()
	workDate := WorkDateOf(now)

	sess, err := s.store.GetForDate(ctx, employeeID, workDate)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, ErrNoSession) {
		return Session{}, err
	}

	return s.store.Create(ctx, Session{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		WorkDate:       workDate,
		StartedAt:      now,
		LastActivityAt: now,
	})
}

// Ping records a heartbeat. A missing session is created as if Start had been
// called, so a missed start does not lose the day.
func (s *Service) Ping(ctx context.Context, employeeID string) (Session, error) {
	if err := s.requireRemote(ctx, employeeID); err != nil {
		return Session{}, err
	}

	now := s.clock.Now()
	workDate := WorkDateOf(now)

	sess, err := s.store.Mutate(ctx, employeeID, workDate, func(sess *Session) error {
		return s.applyHeartbeat(sess, now)
	})
	if errors.Is(err, ErrNoSession) {
		return s.store.Create(ctx, Session{
			ID:             uuid.NewString(),
			EmployeeID:     employeeID,
			WorkDate:       workDate,
			StartedAt:      now,
			LastActivityAt: now,
		})
	}
	return sess, err
}

// Stop applies one final heartbeat-equivalent accumulation and closes the
// session. Stopping an absent or already closed session is a no-op.
func (s *Service) Stop(ctx context.Context, employeeID string) (Session, error) {
	if err := s.requireRemote(ctx, employeeID); err != nil {
		return Session{}, err
	}

	now := s.clock.Now()
	workDate := WorkDateOf(now)

	sess, err := s.store.Mutate(ctx, employeeID, workDate, func(sess *Session) error {
		if sess.State() == StateClosed {
			return nil
		}
		if err := s.applyHeartbeat(sess, now); err != nil {
			return err
		}
		ended := now
		sess.EndedAt = &ended
		return nil
	})
	if errors.Is(err, ErrNoSession) {
		slog.Info("stop without session", "employeeId", employeeID, "workDate", workDate.Format("2006-01-02"))
		return Session{}, nil
	}
	return sess, err
}

// Today returns the current session row without mutating it.
func (s *Service) Today(ctx context.Context, employeeID string) (Session, error) {
	sess, err := s.store.GetForDate(ctx, employeeID, WorkDateOf(s.clock.Now()))
	if errors.Is(err, ErrNoSession) {
		return Session{}, nil
	}
	return sess, err
}

func (s *Service) applyHeartbeat(sess *Session, now time.Time) error {
	if sess.State() == StateClosed {
		return ErrSessionClosed
	}
	if now.Before(sess.LastActivityAt) {
		return ErrHeartbeatOutOfOrder
	}

	gap := now.Sub(sess.LastActivityAt)
	idle := gap >= s.idleCutoff
	if !idle {
		sess.ActiveSeconds += int64(gap / time.Second)
	}
	sess.LastActivityAt = now

	metrics.RecordHeartbeat(idle)
	return nil
}

func (s *Service) requireRemote(ctx context.Context, employeeID string) error {
	emp, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if !emp.IsRemote() {
		return ErrNotRemote
	}
	return nil
}
