package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const itemColumns = "id, employee_id, period, status, pay_type, currency, base_pay, gross_pay, net_pay, timesheet_hours, paid_at, generated_at"

func (s *Store) UpsertItem(ctx context.Context, item Item) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_items (id, employee_id, period, status, pay_type, currency, base_pay, gross_pay, net_pay, timesheet_hours, generated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    ON CONFLICT (employee_id, period)
    DO UPDATE SET pay_type = EXCLUDED.pay_type,
                  currency = EXCLUDED.currency,
                  base_pay = EXCLUDED.base_pay,
                  gross_pay = EXCLUDED.gross_pay,
                  net_pay = EXCLUDED.net_pay,
                  timesheet_hours = EXCLUDED.timesheet_hours,
                  generated_at = EXCLUDED.generated_at
  `, item.ID, item.EmployeeID, item.Period, item.Status, item.PayType, item.Currency, item.BasePay, item.GrossPay, item.NetPay, item.TimesheetHours, item.GeneratedAt)
	return err
}

func (s *Store) ListItems(ctx context.Context, period string) ([]Item, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+itemColumns+`
    FROM payroll_items
    WHERE period = $1
    ORDER BY employee_id
  `, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.EmployeeID, &item.Period, &item.Status, &item.PayType, &item.Currency, &item.BasePay, &item.GrossPay, &item.NetPay, &item.TimesheetHours, &item.PaidAt, &item.GeneratedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *Store) GetItem(ctx context.Context, itemID string) (Item, error) {
	var item Item
	err := s.DB.QueryRow(ctx, `
    SELECT `+itemColumns+`
    FROM payroll_items
    WHERE id = $1
  `, itemID).Scan(&item.ID, &item.EmployeeID, &item.Period, &item.Status, &item.PayType, &item.Currency, &item.BasePay, &item.GrossPay, &item.NetPay, &item.TimesheetHours, &item.PaidAt, &item.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Store) LegacyHours(ctx context.Context, employeeID, period string) (decimal.Decimal, error) {
	var hours decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(hours), 0)
    FROM legacy_timesheets
    WHERE employee_id = $1 AND period = $2
  `, employeeID, period).Scan(&hours)
	if err != nil {
		return decimal.Zero, err
	}
	return hours, nil
}
