package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
)

type earningsRepository struct {
	db *database.DB
}

func NewEarningsRepository(db *database.DB) earnings.EarningsRepository {
	return &earningsRepository{db: db}
}

const earningColumns = `
	id, organization_id, employee_id, period_start, period_end,
	overtime_hours, overtime_rate, bonus_amount, commission_amount,
	notes, created_at, updated_at
`

func scanEarning(row pgx.Row) (*earnings.MonthlyEarning, error) {
	var m earnings.MonthlyEarning
	err := row.Scan(
		&m.ID, &m.OrganizationID, &m.EmployeeID, &m.PeriodStart, &m.PeriodEnd,
		&m.OvertimeHours, &m.OvertimeRate, &m.BonusAmount, &m.CommissionAmount,
		&m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *earningsRepository) UpsertEarning(ctx context.Context, earning *earnings.MonthlyEarning) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_earnings (
			id, organization_id, employee_id, period_start, period_end,
			overtime_hours, overtime_rate, bonus_amount, commission_amount, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_rate = EXCLUDED.overtime_rate,
			bonus_amount = EXCLUDED.bonus_amount,
			commission_amount = EXCLUDED.commission_amount,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		earning.ID, earning.OrganizationID, earning.EmployeeID, earning.PeriodStart, earning.PeriodEnd,
		earning.OvertimeHours, earning.OvertimeRate, earning.BonusAmount, earning.CommissionAmount, earning.Notes,
	).Scan(&earning.ID, &earning.CreatedAt, &earning.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly earning: %w", err)
	}

	return nil
}

func (r *earningsRepository) GetEarning(ctx context.Context, organizationID, employeeID string, periodStart, periodEnd time.Time) (*earnings.MonthlyEarning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + earningColumns + `
		FROM monthly_earnings
		WHERE organization_id = $1 AND employee_id = $2 AND period_start = $3 AND period_end = $4
	`

	m, err := scanEarning(q.QueryRow(ctx, query, organizationID, employeeID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, earnings.ErrEarningNotFound
		}
		return nil, fmt.Errorf("failed to get monthly earning: %w", err)
	}

	return m, nil
}

func (r *earningsRepository) ListEarningsForPeriod(ctx context.Context, organizationID string, periodStart, periodEnd time.Time) (map[string]earnings.MonthlyEarning, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + earningColumns + `
		FROM monthly_earnings
		WHERE organization_id = $1 AND period_start = $2 AND period_end = $3
	`

	rows, err := q.Query(ctx, query, organizationID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly earnings: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string]earnings.MonthlyEarning)
	for rows.Next() {
		m, err := scanEarning(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly earning: %w", err)
		}
		byEmployee[m.EmployeeID] = *m
	}

	return byEmployee, rows.Err()
}

func (r *earningsRepository) DeleteEarning(ctx context.Context, organizationID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_earnings WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete monthly earning: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return earnings.ErrEarningNotFound
	}

	return nil
}

// ========== ONE-OFF DEDUCTIONS ==========

const oneOffColumns = `
	id, organization_id, employee_id, category, description, amount, deduction_date,
	processed_in_batch, processed_at, created_at, updated_at
`

func scanOneOff(row pgx.Row) (*earnings.OneOffDeduction, error) {
	var d earnings.OneOffDeduction
	err := row.Scan(
		&d.ID, &d.OrganizationID, &d.EmployeeID, &d.Category, &d.Description, &d.Amount, &d.DeductionDate,
		&d.ProcessedInBatch, &d.ProcessedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *earningsRepository) CreateOneOffDeduction(ctx context.Context, deduction *earnings.OneOffDeduction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO one_off_deductions (id, organization_id, employee_id, category, description, amount, deduction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		deduction.ID, deduction.OrganizationID, deduction.EmployeeID,
		deduction.Category, deduction.Description, deduction.Amount, deduction.DeductionDate,
	).Scan(&deduction.CreatedAt, &deduction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create one-off deduction: %w", err)
	}

	return nil
}

func (r *earningsRepository) GetOneOffDeduction(ctx context.Context, organizationID, id string) (*earnings.OneOffDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + oneOffColumns + ` FROM one_off_deductions WHERE organization_id = $1 AND id = $2`

	d, err := scanOneOff(q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, earnings.ErrDeductionNotFound
		}
		return nil, fmt.Errorf("failed to get one-off deduction: %w", err)
	}

	return d, nil
}

func (r *earningsRepository) ListUnprocessedForPeriod(ctx context.Context, organizationID string, periodStart, periodEnd time.Time, batchID string) (map[string][]earnings.OneOffDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + oneOffColumns + `
		FROM one_off_deductions
		WHERE organization_id = $1
		  AND deduction_date BETWEEN $2 AND $3
		  AND (processed_in_batch IS NULL OR processed_in_batch = $4)
		ORDER BY deduction_date
	`

	rows, err := q.Query(ctx, query, organizationID, periodStart, periodEnd, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list one-off deductions: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]earnings.OneOffDeduction)
	for rows.Next() {
		d, err := scanOneOff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan one-off deduction: %w", err)
		}
		byEmployee[d.EmployeeID] = append(byEmployee[d.EmployeeID], *d)
	}

	return byEmployee, rows.Err()
}

func (r *earningsRepository) MarkProcessed(ctx context.Context, ids []string, batchID string, processedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE one_off_deductions
		SET processed_in_batch = $2, processed_at = $3, updated_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := q.Exec(ctx, query, ids, batchID, processedAt); err != nil {
		return fmt.Errorf("failed to mark one-off deductions processed: %w", err)
	}

	return nil
}

func (r *earningsRepository) ReleaseProcessed(ctx context.Context, batchID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE one_off_deductions
		SET processed_in_batch = NULL, processed_at = NULL, updated_at = NOW()
		WHERE processed_in_batch = $1
	`

	if _, err := q.Exec(ctx, query, batchID); err != nil {
		return fmt.Errorf("failed to release one-off deductions: %w", err)
	}

	return nil
}

func (r *earningsRepository) DeleteOneOffDeduction(ctx context.Context, organizationID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM one_off_deductions WHERE organization_id = $1 AND id = $2 AND processed_in_batch IS NULL`

	tag, err := q.Exec(ctx, query, organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to delete one-off deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, getErr := r.GetOneOffDeduction(ctx, organizationID, id)
		if getErr != nil {
			return getErr
		}
		if existing.IsProcessed() {
			return earnings.ErrDeductionProcessed
		}
		return earnings.ErrDeductionNotFound
	}

	return nil
}
