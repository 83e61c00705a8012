package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/payrun"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
)

type payrunRepository struct {
	db *database.DB
}

func NewPayrunRepository(db *database.DB) payrun.PayrunRepository {
	return &payrunRepository{db: db}
}

const batchColumns = `
	id, organization_id, batch_number, status, period_start, period_end, pay_date,
	include_all_employees, selected_employee_ids,
	total_employees, total_gross_pay, total_net_pay, total_paye_tax, total_nssf, total_shif, total_ahl,
	calculation_notes, calculated_by, calculated_at,
	reviewed_by, reviewed_at, review_notes,
	approved_by, approved_at, approval_notes,
	locked_by, locked_at,
	remitted_by, remitted_at, remittance_notes,
	cancelled_by, cancelled_at, cancel_reason,
	created_at, updated_at
`

func scanBatch(row pgx.Row) (*payrun.PayrollBatch, error) {
	var b payrun.PayrollBatch
	err := row.Scan(
		&b.ID, &b.OrganizationID, &b.BatchNumber, &b.Status, &b.PeriodStart, &b.PeriodEnd, &b.PayDate,
		&b.IncludeAllEmployees, &b.SelectedEmployeeIDs,
		&b.TotalEmployees, &b.TotalGrossPay, &b.TotalNetPay, &b.TotalPAYETax, &b.TotalNSSF, &b.TotalSHIF, &b.TotalAHL,
		&b.CalculationNotes, &b.CalculatedBy, &b.CalculatedAt,
		&b.ReviewedBy, &b.ReviewedAt, &b.ReviewNotes,
		&b.ApprovedBy, &b.ApprovedAt, &b.ApprovalNotes,
		&b.LockedBy, &b.LockedAt,
		&b.RemittedBy, &b.RemittedAt, &b.RemittanceNotes,
		&b.CancelledBy, &b.CancelledAt, &b.CancelReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *payrunRepository) CreateBatch(ctx context.Context, batch *payrun.PayrollBatch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_batches (
			id, organization_id, batch_number, status, period_start, period_end, pay_date,
			include_all_employees, selected_employee_ids
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		batch.ID, batch.OrganizationID, batch.BatchNumber, batch.Status,
		batch.PeriodStart, batch.PeriodEnd, batch.PayDate,
		batch.IncludeAllEmployees, batch.SelectedEmployeeIDs,
	).Scan(&batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_batch_number") {
			return payrun.ErrBatchNumberExists
		}
		return fmt.Errorf("failed to create payroll batch: %w", err)
	}

	return nil
}

func (r *payrunRepository) GetBatchByID(ctx context.Context, organizationID, id string) (*payrun.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE organization_id = $1 AND id = $2`

	b, err := scanBatch(q.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payrun.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return b, nil
}

func (r *payrunRepository) GetBatchByNumber(ctx context.Context, organizationID, batchNumber string) (*payrun.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE organization_id = $1 AND batch_number = $2`

	b, err := scanBatch(q.QueryRow(ctx, query, organizationID, batchNumber))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payrun.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return b, nil
}

func (r *payrunRepository) ListBatches(ctx context.Context, organizationID string, status *payrun.BatchStatus) ([]payrun.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE organization_id = $1`
	args := []interface{}{organizationID}
	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY period_start DESC, batch_number"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payrun.PayrollBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, *b)
	}

	return batches, rows.Err()
}

// transitionFields maps the target status to the actor/timestamp/notes
// columns stamped alongside it.
var transitionFields = map[payrun.BatchStatus][3]string{
	payrun.StatusCalculated: {"calculated_by", "calculated_at", "calculation_notes"},
	payrun.StatusReviewed:   {"reviewed_by", "reviewed_at", "review_notes"},
	payrun.StatusApproved:   {"approved_by", "approved_at", "approval_notes"},
	payrun.StatusLocked:     {"locked_by", "locked_at", ""},
	payrun.StatusRemitted:   {"remitted_by", "remitted_at", "remittance_notes"},
	payrun.StatusCancelled:  {"cancelled_by", "cancelled_at", "cancel_reason"},
	payrun.StatusDraft:      {"", "", "calculation_notes"},
}

// TransitionBatch applies the status change only when the batch is still in
// t.From. Zero rows affected with an existing batch means someone else moved
// it first.
func (r *payrunRepository) TransitionBatch(ctx context.Context, organizationID, id string, t payrun.Transition) error {
	q := GetQuerier(ctx, r.db)

	set := []string{"status = $4", "updated_at = NOW()"}
	args := []interface{}{organizationID, id, t.From, t.To}

	fields := transitionFields[t.To]
	if fields[0] != "" {
		args = append(args, t.ActorID)
		set = append(set, fmt.Sprintf("%s = $%d", fields[0], len(args)))
	}
	if fields[1] != "" {
		args = append(args, t.At)
		set = append(set, fmt.Sprintf("%s = $%d", fields[1], len(args)))
	}
	if fields[2] != "" {
		args = append(args, t.Notes)
		set = append(set, fmt.Sprintf("%s = $%d", fields[2], len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE payroll_batches
		SET %s
		WHERE organization_id = $1 AND id = $2 AND status = $3
	`, strings.Join(set, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to transition payroll batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetBatchByID(ctx, organizationID, id); getErr != nil {
			return getErr
		}
		return payrun.ErrBatchConcurrentlyUpdated
	}

	return nil
}

func (r *payrunRepository) UpdateBatchTotals(ctx context.Context, id string, batch *payrun.PayrollBatch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_batches
		SET total_employees = $2, total_gross_pay = $3, total_net_pay = $4,
			total_paye_tax = $5, total_nssf = $6, total_shif = $7, total_ahl = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id,
		batch.TotalEmployees, batch.TotalGrossPay, batch.TotalNetPay,
		batch.TotalPAYETax, batch.TotalNSSF, batch.TotalSHIF, batch.TotalAHL,
	)
	if err != nil {
		return fmt.Errorf("failed to update batch totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrBatchNotFound
	}

	return nil
}

// ========== PAYSLIP SNAPSHOTS ==========

const payslipColumns = `
	id, batch_id, employee_id, employee_number, employee_name,
	kra_pin, nssf_number, sha_number, job_title, department,
	bank_name, bank_branch, account_number, account_name,
	basic_salary, house_allowance, transport_allowance, medical_allowance, other_allowances, total_allowances,
	overtime_hours, overtime_pay, bonus_amount, commission_pay, gross_pay,
	nssf_pensionable_pay, nssf_employee, nssf_employer, shif_contribution, ahl_employee, ahl_employer,
	taxable_income, gross_tax, personal_relief, insurance_relief, pension_relief, mortgage_relief, disability_relief, paye_tax,
	sacco_deductions, loan_repayments, salary_advance, welfare_deductions, other_deductions,
	total_deductions, net_pay, calculation_details, warnings,
	payslip_sent, payslip_sent_at, payment_processed, payment_processed_at, payment_reference,
	created_at, updated_at
`

func scanPayslip(row pgx.Row) (*payrun.PayslipRecord, error) {
	var p payrun.PayslipRecord
	err := row.Scan(
		&p.ID, &p.BatchID, &p.EmployeeID, &p.EmployeeNumber, &p.EmployeeName,
		&p.KRAPin, &p.NSSFNumber, &p.SHANumber, &p.JobTitle, &p.Department,
		&p.BankName, &p.BankBranch, &p.AccountNumber, &p.AccountName,
		&p.BasicSalary, &p.HouseAllowance, &p.TransportAllowance, &p.MedicalAllowance, &p.OtherAllowances, &p.TotalAllowances,
		&p.OvertimeHours, &p.OvertimePay, &p.BonusAmount, &p.CommissionPay, &p.GrossPay,
		&p.NSSFPensionablePay, &p.NSSFEmployee, &p.NSSFEmployer, &p.SHIFContribution, &p.AHLEmployee, &p.AHLEmployer,
		&p.TaxableIncome, &p.GrossTax, &p.PersonalRelief, &p.InsuranceRelief, &p.PensionRelief, &p.MortgageRelief, &p.DisabilityRelief, &p.PAYETax,
		&p.SaccoDeductions, &p.LoanRepayments, &p.SalaryAdvance, &p.WelfareDeductions, &p.OtherDeductions,
		&p.TotalDeductions, &p.NetPay, &p.CalculationDetails, &p.Warnings,
		&p.PayslipSent, &p.PayslipSentAt, &p.PaymentProcessed, &p.PaymentProcessedAt, &p.PaymentReference,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplaceSnapshots checks the batch status itself before touching any row, so
// locked-run immutability does not depend on the caller's transition guard.
func (r *payrunRepository) ReplaceSnapshots(ctx context.Context, batchID string, slips []payrun.PayslipRecord) error {
	q := GetQuerier(ctx, r.db)

	var status payrun.BatchStatus
	if err := q.QueryRow(ctx, `SELECT status FROM payroll_batches WHERE id = $1`, batchID).Scan(&status); err != nil {
		if err == pgx.ErrNoRows {
			return payrun.ErrBatchNotFound
		}
		return fmt.Errorf("failed to check batch status: %w", err)
	}
	if status.IsLocked() {
		return payrun.ErrBatchLocked
	}

	deleteQuery := `
		DELETE FROM payslip_records
		USING payroll_batches b
		WHERE payslip_records.batch_id = $1
			AND b.id = payslip_records.batch_id
			AND b.status NOT IN ('LOCKED', 'REMITTED')
	`
	if _, err := q.Exec(ctx, deleteQuery, batchID); err != nil {
		return fmt.Errorf("failed to clear payslip snapshots: %w", err)
	}

	query := `
		INSERT INTO payslip_records (
			id, batch_id, employee_id, employee_number, employee_name,
			kra_pin, nssf_number, sha_number, job_title, department,
			bank_name, bank_branch, account_number, account_name,
			basic_salary, house_allowance, transport_allowance, medical_allowance, other_allowances, total_allowances,
			overtime_hours, overtime_pay, bonus_amount, commission_pay, gross_pay,
			nssf_pensionable_pay, nssf_employee, nssf_employer, shif_contribution, ahl_employee, ahl_employer,
			taxable_income, gross_tax, personal_relief, insurance_relief, pension_relief, mortgage_relief, disability_relief, paye_tax,
			sacco_deductions, loan_repayments, salary_advance, welfare_deductions, other_deductions,
			total_deductions, net_pay, calculation_details, warnings
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45, $46, $47, $48
		)
	`

	for _, p := range slips {
		_, err := q.Exec(ctx, query,
			p.ID, batchID, p.EmployeeID, p.EmployeeNumber, p.EmployeeName,
			p.KRAPin, p.NSSFNumber, p.SHANumber, p.JobTitle, p.Department,
			p.BankName, p.BankBranch, p.AccountNumber, p.AccountName,
			p.BasicSalary, p.HouseAllowance, p.TransportAllowance, p.MedicalAllowance, p.OtherAllowances, p.TotalAllowances,
			p.OvertimeHours, p.OvertimePay, p.BonusAmount, p.CommissionPay, p.GrossPay,
			p.NSSFPensionablePay, p.NSSFEmployee, p.NSSFEmployer, p.SHIFContribution, p.AHLEmployee, p.AHLEmployer,
			p.TaxableIncome, p.GrossTax, p.PersonalRelief, p.InsuranceRelief, p.PensionRelief, p.MortgageRelief, p.DisabilityRelief, p.PAYETax,
			p.SaccoDeductions, p.LoanRepayments, p.SalaryAdvance, p.WelfareDeductions, p.OtherDeductions,
			p.TotalDeductions, p.NetPay, p.CalculationDetails, p.Warnings,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payslip snapshot for employee %s: %w", p.EmployeeNumber, err)
		}
	}

	return nil
}

func (r *payrunRepository) ListSnapshots(ctx context.Context, organizationID, batchID string) ([]payrun.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + prefixed(payslipColumns, "p.") + `
		FROM payslip_records p
		JOIN payroll_batches b ON b.id = p.batch_id
		WHERE b.organization_id = $1 AND p.batch_id = $2
		ORDER BY p.employee_number
	`

	rows, err := q.Query(ctx, query, organizationID, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip snapshots: %w", err)
	}
	defer rows.Close()

	var slips []payrun.PayslipRecord
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip snapshot: %w", err)
		}
		slips = append(slips, *p)
	}

	return slips, rows.Err()
}

func (r *payrunRepository) GetSnapshotByID(ctx context.Context, organizationID, payslipID string) (*payrun.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + prefixed(payslipColumns, "p.") + `
		FROM payslip_records p
		JOIN payroll_batches b ON b.id = p.batch_id
		WHERE b.organization_id = $1 AND p.id = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, organizationID, payslipID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payrun.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip snapshot: %w", err)
	}

	return p, nil
}

// UpdateSnapshotPayment touches only the payment tracking whitelist. All
// calculation columns stay untouched regardless of batch status.
func (r *payrunRepository) UpdateSnapshotPayment(ctx context.Context, organizationID, payslipID string, update payrun.PaymentUpdate) error {
	q := GetQuerier(ctx, r.db)

	set := []string{"updated_at = NOW()"}
	args := []interface{}{organizationID, payslipID}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.PayslipSent != nil {
		add("payslip_sent", *update.PayslipSent)
		add("payslip_sent_at", update.PayslipSentAt)
	}
	if update.PaymentProcessed != nil {
		add("payment_processed", *update.PaymentProcessed)
		add("payment_processed_at", update.ProcessedAt)
	}
	if update.PaymentReference != nil {
		add("payment_reference", *update.PaymentReference)
	}

	query := fmt.Sprintf(`
		UPDATE payslip_records p
		SET %s
		FROM payroll_batches b
		WHERE b.id = p.batch_id AND b.organization_id = $1 AND p.id = $2
	`, strings.Join(set, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payslip payment fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrun.ErrPayslipNotFound
	}

	return nil
}

// prefixed qualifies a comma-separated column list with a table alias.
func prefixed(columns, prefix string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = prefix + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
