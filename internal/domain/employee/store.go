package employee

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

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, first_name, last_name, email, employment_type, work_arrangement, status
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.EmploymentType, &emp.WorkArrangement, &emp.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) ListActiveEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, first_name, last_name, email, employment_type, work_arrangement, status
    FROM employees
    WHERE status = $1
    ORDER BY last_name, first_name
  `, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.EmploymentType, &emp.WorkArrangement, &emp.Status); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ActiveCompensationAsOf(ctx context.Context, employeeID string, asOf time.Time) (Compensation, error) {
	var comp Compensation
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, salary_type, rate, currency, effective_from, effective_to, active
    FROM compensations
    WHERE employee_id = $1
      AND active
      AND effective_from <= $2
      AND (effective_to IS NULL OR effective_to >= $2)
    ORDER BY effective_from DESC
    LIMIT 1
  `, employeeID, asOf).Scan(&comp.ID, &comp.EmployeeID, &comp.SalaryType, &comp.Rate, &comp.Currency, &comp.EffectiveFrom, &comp.EffectiveTo, &comp.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return Compensation{}, ErrNoActiveCompensation
	}
	if err != nil {
		return Compensation{}, err
	}
	return comp, nil
}
