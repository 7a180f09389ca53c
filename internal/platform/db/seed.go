package db

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"worktime/internal/platform/config"
)

// Seed provisions the bootstrap operator account plus a small demo data set in
// non-production environments: two remote employees with active compensation
// records and the current year's paid holidays.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail != "" {
		if err := ensureOperatorUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	if cfg.Environment == "production" {
		return nil
	}

	fullTime, err := ensureEmployee(ctx, pool, "Mara", "Lindqvist", "mara@example.com", "full_time", "remote")
	if err != nil {
		return err
	}
	partTime, err := ensureEmployee(ctx, pool, "Tomas", "Rivera", "tomas@example.com", "part_time", "remote")
	if err != nil {
		return err
	}

	if err := ensureCompensation(ctx, pool, fullTime, "monthly", "5200", "EUR"); err != nil {
		return err
	}
	if err := ensureCompensation(ctx, pool, partTime, "hourly", "100", "EUR"); err != nil {
		return err
	}

	year := time.Now().Year()
	holidays := map[string]string{
		"New Year's Day": time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		"Labour Day":     time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		"Christmas Day":  time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
	}
	for name, date := range holidays {
		if _, err := pool.Exec(ctx, `
      INSERT INTO paid_holidays (holiday_date, name, paid)
      VALUES ($1, $2, true)
      ON CONFLICT (holiday_date) DO NOTHING
    `, date, name); err != nil {
			return err
		}
	}

	return nil
}

func ensureOperatorUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, operator)
    VALUES ($1, $2, true)
  `, email, string(hash))
	return err
}

func ensureEmployee(ctx context.Context, pool *pgxpool.Pool, first, last, email, employmentType, arrangement string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, email, employment_type, work_arrangement, status)
    VALUES ($1, $2, $3, $4, $5, 'active')
    RETURNING id
  `, first, last, email, employmentType, arrangement).Scan(&id)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if _, err := pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, employee_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO NOTHING
  `, email, string(hash), id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureCompensation(ctx context.Context, pool *pgxpool.Pool, employeeID, salaryType, rate, currency string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM compensations WHERE employee_id = $1 AND active", employeeID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := pool.Exec(ctx, `
    INSERT INTO compensations (employee_id, salary_type, rate, currency, effective_from, active)
    VALUES ($1, $2, $3, $4, date_trunc('year', now())::date, true)
  `, employeeID, salaryType, rate, currency)
	return err
}
