package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, organization_id, employee_number, first_name, middle_name, last_name, email,
	national_id, kra_pin, nssf_number, sha_number, job_title, department,
	date_hired, is_active, basic_salary, pay_frequency,
	has_disability_exemption, insurance_relief_amount, pension_contribution, mortgage_interest,
	bank_name, bank_branch, account_number, account_name, created_at, updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.OrganizationID, &e.EmployeeNumber, &e.FirstName, &e.MiddleName, &e.LastName, &e.Email,
		&e.NationalID, &e.KRAPin, &e.NSSFNumber, &e.SHANumber, &e.JobTitle, &e.Department,
		&e.DateHired, &e.IsActive, &e.BasicSalary, &e.PayFrequency,
		&e.HasDisabilityExemption, &e.InsuranceReliefAmount, &e.PensionContribution, &e.MortgageInterest,
		&e.BankName, &e.BankBranch, &e.AccountNumber, &e.AccountName, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, organization_id, employee_number, first_name, middle_name, last_name, email,
			national_id, kra_pin, nssf_number, sha_number, job_title, department,
			date_hired, is_active, basic_salary, pay_frequency,
			has_disability_exemption, insurance_relief_amount, pension_contribution, mortgage_interest,
			bank_name, bank_branch, account_number, account_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.OrganizationID, emp.EmployeeNumber, emp.FirstName, emp.MiddleName, emp.LastName, emp.Email,
		emp.NationalID, emp.KRAPin, emp.NSSFNumber, emp.SHANumber, emp.JobTitle, emp.Department,
		emp.DateHired, emp.IsActive, emp.BasicSalary, emp.PayFrequency,
		emp.HasDisabilityExemption, emp.InsuranceReliefAmount, emp.PensionContribution, emp.MortgageInterest,
		emp.BankName, emp.BankBranch, emp.AccountNumber, emp.AccountName,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_number") {
			return employee.ErrEmployeeNumberExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, organizationID, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 AND id = $2`

	e, err := scanEmployee(q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmployeeNumber(ctx context.Context, organizationID, employeeNumber string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 AND employee_number = $2`

	e, err := scanEmployee(q.QueryRow(ctx, query, organizationID, employeeNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, organizationID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY employee_number"

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) ListEligible(ctx context.Context, organizationID string, periodEnd time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND is_active = true AND date_hired <= $2
		ORDER BY employee_number
	`

	rows, err := q.Query(ctx, query, organizationID, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepository) ListByIDs(ctx context.Context, organizationID string, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND id = ANY($2)
		ORDER BY employee_number
	`

	rows, err := q.Query(ctx, query, organizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by ids: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $3, middle_name = $4, last_name = $5, email = $6,
			job_title = $7, department = $8, basic_salary = $9, pay_frequency = $10,
			has_disability_exemption = $11, insurance_relief_amount = $12,
			pension_contribution = $13, mortgage_interest = $14,
			bank_name = $15, bank_branch = $16, account_number = $17, account_name = $18,
			updated_at = NOW()
		WHERE organization_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.OrganizationID, emp.ID,
		emp.FirstName, emp.MiddleName, emp.LastName, emp.Email,
		emp.JobTitle, emp.Department, emp.BasicSalary, emp.PayFrequency,
		emp.HasDisabilityExemption, emp.InsuranceReliefAmount,
		emp.PensionContribution, emp.MortgageInterest,
		emp.BankName, emp.BankBranch, emp.AccountNumber, emp.AccountName,
	).Scan(&emp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) SetActive(ctx context.Context, organizationID, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = $3, updated_at = NOW() WHERE organization_id = $1 AND id = $2`

	tag, err := q.Exec(ctx, query, organizationID, id, active)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ========== RECURRING ALLOWANCES ==========

func (r *employeeRepository) CreateAllowance(ctx context.Context, a *employee.RecurringAllowance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recurring_allowances (id, employee_id, category, description, amount, is_active, effective_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.Category, a.Description, a.Amount, a.IsActive, a.EffectiveDate, a.EndDate,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create allowance: %w", err)
	}

	return nil
}

const allowanceColumns = `
	id, employee_id, category, description, amount, is_active, effective_date, end_date, created_at, updated_at
`

func (r *employeeRepository) ListAllowances(ctx context.Context, employeeID string) ([]employee.RecurringAllowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + allowanceColumns + ` FROM recurring_allowances WHERE employee_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var allowances []employee.RecurringAllowance
	for rows.Next() {
		var a employee.RecurringAllowance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Category, &a.Description, &a.Amount,
			&a.IsActive, &a.EffectiveDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allowances = append(allowances, a)
	}

	return allowances, rows.Err()
}

func (r *employeeRepository) ListAllowancesForEmployees(ctx context.Context, employeeIDs []string) (map[string][]employee.RecurringAllowance, error) {
	if len(employeeIDs) == 0 {
		return map[string][]employee.RecurringAllowance{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + allowanceColumns + ` FROM recurring_allowances WHERE employee_id = ANY($1) ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]employee.RecurringAllowance)
	for rows.Next() {
		var a employee.RecurringAllowance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Category, &a.Description, &a.Amount,
			&a.IsActive, &a.EffectiveDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	return byEmployee, rows.Err()
}

func (r *employeeRepository) UpdateAllowance(ctx context.Context, a *employee.RecurringAllowance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE recurring_allowances
		SET category = $3, description = $4, amount = $5, is_active = $6, effective_date = $7, end_date = $8, updated_at = NOW()
		WHERE employee_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.ID, a.Category, a.Description, a.Amount, a.IsActive, a.EffectiveDate, a.EndDate,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrAllowanceNotFound
		}
		return fmt.Errorf("failed to update allowance: %w", err)
	}

	return nil
}

func (r *employeeRepository) DeleteAllowance(ctx context.Context, employeeID, allowanceID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recurring_allowances WHERE employee_id = $1 AND id = $2`, employeeID, allowanceID)
	if err != nil {
		return fmt.Errorf("failed to delete allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrAllowanceNotFound
	}

	return nil
}

// ========== RECURRING DEDUCTIONS ==========

func (r *employeeRepository) CreateDeduction(ctx context.Context, d *employee.RecurringDeduction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO recurring_deductions (id, employee_id, category, description, amount, is_active, effective_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		d.ID, d.EmployeeID, d.Category, d.Description, d.Amount, d.IsActive, d.EffectiveDate, d.EndDate,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deduction: %w", err)
	}

	return nil
}

const deductionColumns = `
	id, employee_id, category, description, amount, is_active, effective_date, end_date, created_at, updated_at
`

func (r *employeeRepository) ListDeductions(ctx context.Context, employeeID string) ([]employee.RecurringDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM recurring_deductions WHERE employee_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []employee.RecurringDeduction
	for rows.Next() {
		var d employee.RecurringDeduction
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Category, &d.Description, &d.Amount,
			&d.IsActive, &d.EffectiveDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, rows.Err()
}

func (r *employeeRepository) ListDeductionsForEmployees(ctx context.Context, employeeIDs []string) (map[string][]employee.RecurringDeduction, error) {
	if len(employeeIDs) == 0 {
		return map[string][]employee.RecurringDeduction{}, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM recurring_deductions WHERE employee_id = ANY($1) ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	byEmployee := make(map[string][]employee.RecurringDeduction)
	for rows.Next() {
		var d employee.RecurringDeduction
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Category, &d.Description, &d.Amount,
			&d.IsActive, &d.EffectiveDate, &d.EndDate, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		byEmployee[d.EmployeeID] = append(byEmployee[d.EmployeeID], d)
	}

	return byEmployee, rows.Err()
}

func (r *employeeRepository) UpdateDeduction(ctx context.Context, d *employee.RecurringDeduction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE recurring_deductions
		SET category = $3, description = $4, amount = $5, is_active = $6, effective_date = $7, end_date = $8, updated_at = NOW()
		WHERE employee_id = $1 AND id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		d.EmployeeID, d.ID, d.Category, d.Description, d.Amount, d.IsActive, d.EffectiveDate, d.EndDate,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to update deduction: %w", err)
	}

	return nil
}

func (r *employeeRepository) DeleteDeduction(ctx context.Context, employeeID, deductionID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM recurring_deductions WHERE employee_id = $1 AND id = $2`, employeeID, deductionID)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrDeductionNotFound
	}

	return nil
}
