package summary

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Upsert(ctx context.Context, sum Summary) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO work_summaries (employee_id, work_date, active_seconds, required_seconds, amount, currency, generated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (employee_id, work_date)
    DO UPDATE SET active_seconds = EXCLUDED.active_seconds,
                  required_seconds = EXCLUDED.required_seconds,
                  amount = EXCLUDED.amount,
                  currency = EXCLUDED.currency,
                  generated_at = EXCLUDED.generated_at
  `, sum.EmployeeID, sum.WorkDate.Format("2006-01-02"), sum.ActiveSeconds, sum.RequiredSeconds, sum.Amount, sum.Currency, sum.GeneratedAt)
	return err
}

func (s *Store) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Summary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, work_date, active_seconds, required_seconds, amount, currency, generated_at
    FROM work_summaries
    WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
    ORDER BY work_date
  `, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.EmployeeID, &sum.WorkDate, &sum.ActiveSeconds, &sum.RequiredSeconds, &sum.Amount, &sum.Currency, &sum.GeneratedAt); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
