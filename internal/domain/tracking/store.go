package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const sessionColumns = "id, employee_id, work_date, started_at, last_activity_at, ended_at, active_seconds"

func scanSession(row pgx.Row) (Session, error) {
	var sess Session
	err := row.Scan(&sess.ID, &sess.EmployeeID, &sess.WorkDate, &sess.StartedAt, &sess.LastActivityAt, &sess.EndedAt, &sess.ActiveSeconds)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Store) GetForDate(ctx context.Context, employeeID string, workDate time.Time) (Session, error) {
	return scanSession(s.DB.QueryRow(ctx, `
    SELECT `+sessionColumns+`
    FROM work_sessions
    WHERE employee_id = $1 AND work_date = $2
  `, employeeID, workDate.Format("2006-01-02")))
}

func (s *Store) Create(ctx context.Context, sess Session) (Session, error) {
	created, err := scanSession(s.DB.QueryRow(ctx, `
    INSERT INTO work_sessions (id, employee_id, work_date, started_at, last_activity_at, active_seconds)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (employee_id, work_date) DO NOTHING
    RETURNING `+sessionColumns+`
  `, sess.ID, sess.EmployeeID, sess.WorkDate.Format("2006-01-02"), sess.StartedAt, sess.LastActivityAt, sess.ActiveSeconds))
	if errors.Is(err, ErrNoSession) {
		// Lost the insert race; the existing row wins.
		return s.GetForDate(ctx, sess.EmployeeID, sess.WorkDate)
	}
	return created, err
}

func (s *Store) Mutate(ctx context.Context, employeeID string, workDate time.Time, fn func(sess *Session) error) (Session, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Session{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sess, err := scanSession(tx.QueryRow(ctx, `
    SELECT `+sessionColumns+`
    FROM work_sessions
    WHERE employee_id = $1 AND work_date = $2
    FOR UPDATE
  `, employeeID, workDate.Format("2006-01-02")))
	if err != nil {
		return Session{}, err
	}

	if err := fn(&sess); err != nil {
		return Session{}, err
	}

	if _, err := tx.Exec(ctx, `
    UPDATE work_sessions
    SET last_activity_at = $1, ended_at = $2, active_seconds = $3
    WHERE id = $4
  `, sess.LastActivityAt, sess.EndedAt, sess.ActiveSeconds, sess.ID); err != nil {
		return Session{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Store) SumActiveSeconds(ctx context.Context, employeeID string, from, to time.Time) (int64, error) {
	var total int64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(active_seconds), 0)
    FROM work_sessions
    WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
  `, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&total)
	return total, err
}

func (s *Store) CountSessions(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM work_sessions
    WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
  `, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(&count)
	return count, err
}
