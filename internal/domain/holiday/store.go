package holiday

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

func (s *Store) IsPaidHoliday(ctx context.Context, date time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM paid_holidays
    WHERE holiday_date = $1 AND paid
  `, date.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ListPaidHolidays(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT holiday_date, name, paid
    FROM paid_holidays
    WHERE paid AND holiday_date >= $1 AND holiday_date <= $2
    ORDER BY holiday_date
  `, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.Paid); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
