package payrun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/domain/payrun"
	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
	"github.com/payrollhq/payroll-backend-go/internal/repository/postgresql"
	"github.com/payrollhq/payroll-backend-go/internal/service/calculation"
)

type PayrunServiceImpl struct {
	db           *database.DB
	payrunRepo   payrun.PayrunRepository
	employeeRepo employee.EmployeeRepository
	earningsRepo earnings.EarningsRepository
	rateRepo     ratetable.RateTableRepository
	workers      int
}

func NewPayrunService(
	db *database.DB,
	payrunRepo payrun.PayrunRepository,
	employeeRepo employee.EmployeeRepository,
	earningsRepo earnings.EarningsRepository,
	rateRepo ratetable.RateTableRepository,
	workers int,
) payrun.PayrunService {
	if workers < 1 {
		workers = 1
	}
	return &PayrunServiceImpl{
		db:           db,
		payrunRepo:   payrunRepo,
		employeeRepo: employeeRepo,
		earningsRepo: earningsRepo,
		rateRepo:     rateRepo,
		workers:      workers,
	}
}

// Helper to get organization_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (organizationID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return organizationID, userID, nil
}

func (s *PayrunServiceImpl) CalculateBatch(ctx context.Context, req payrun.CalculateBatchRequest) (payrun.RunSummary, error) {
	if err := req.Validate(); err != nil {
		return payrun.RunSummary{}, err
	}

	organizationID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.RunSummary{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	batch, err := s.getOrCreateBatch(ctx, organizationID, req, periodStart, periodEnd, payDate)
	if err != nil {
		return payrun.RunSummary{}, err
	}

	if batch.Status.IsLocked() {
		return payrun.RunSummary{}, payrun.ErrBatchLocked
	}
	if batch.Status != payrun.StatusCalculating {
		if !batch.Status.CanRecalculate() {
			return payrun.RunSummary{}, payrun.ErrInvalidStatusTransition
		}
		err = s.payrunRepo.TransitionBatch(ctx, organizationID, batch.ID, payrun.Transition{
			From: batch.Status, To: payrun.StatusCalculating, ActorID: userID, At: time.Now().UTC(),
		})
		if err != nil {
			return payrun.RunSummary{}, err
		}
	}

	summary, runErr := s.runBatch(ctx, organizationID, userID, batch, req)
	if runErr != nil {
		// Run-level failure (missing configuration, storage error): the
		// batch goes back to DRAFT with the reason recorded.
		revertErr := s.payrunRepo.TransitionBatch(ctx, organizationID, batch.ID, payrun.Transition{
			From:    payrun.StatusCalculating,
			To:      payrun.StatusDraft,
			ActorID: userID,
			At:      time.Now().UTC(),
			Notes:   fmt.Sprintf("calculation aborted: %v", runErr),
		})
		if revertErr != nil {
			return payrun.RunSummary{}, fmt.Errorf("%v (revert to draft failed: %w)", runErr, revertErr)
		}
		return payrun.RunSummary{}, runErr
	}

	return summary, nil
}

func (s *PayrunServiceImpl) getOrCreateBatch(ctx context.Context, organizationID string, req payrun.CalculateBatchRequest, periodStart, periodEnd, payDate time.Time) (*payrun.PayrollBatch, error) {
	batch, err := s.payrunRepo.GetBatchByNumber(ctx, organizationID, req.BatchNumber)
	if err == nil {
		return batch, nil
	}
	if !errors.Is(err, payrun.ErrBatchNotFound) {
		return nil, err
	}

	batch = &payrun.PayrollBatch{
		ID:                  uuid.NewString(),
		OrganizationID:      organizationID,
		BatchNumber:         req.BatchNumber,
		Status:              payrun.StatusDraft,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		PayDate:             payDate,
		IncludeAllEmployees: req.IncludeAllEmployees,
		SelectedEmployeeIDs: req.SelectedEmployeeIDs,
	}
	if err := s.payrunRepo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// runBatch resolves rates once, calculates every eligible employee through a
// bounded worker pool, and persists snapshots, totals and the status change
// in one transaction. Per-employee failures keep the batch in DRAFT.
func (s *PayrunServiceImpl) runBatch(ctx context.Context, organizationID, userID string, batch *payrun.PayrollBatch, req payrun.CalculateBatchRequest) (payrun.RunSummary, error) {
	eligible, err := s.eligibleEmployees(ctx, organizationID, batch.PeriodEnd, req)
	if err != nil {
		return payrun.RunSummary{}, err
	}
	if len(eligible) == 0 {
		return payrun.RunSummary{}, payrun.ErrNoEligibleEmployees
	}

	rates, err := calculation.ResolveRateContext(ctx, s.rateRepo, batch.PeriodEnd)
	if err != nil {
		return payrun.RunSummary{}, err
	}

	inputs, oneOffIDs, err := s.collectInputs(ctx, organizationID, batch, eligible)
	if err != nil {
		return payrun.RunSummary{}, err
	}

	results, calcErrs := s.calculateConcurrently(ctx, rates, inputs)

	if len(calcErrs) > 0 {
		summary := payrun.RunSummary{
			Processed: len(results),
			Failed:    len(calcErrs),
		}
		var notes []string
		for _, calcErr := range calcErrs {
			summary.Errors = append(summary.Errors, payrun.BatchEmployeeError{
				EmployeeID:     calcErr.EmployeeID,
				EmployeeNumber: calcErr.EmployeeNumber,
				Message:        calcErr.Err.Error(),
			})
			notes = append(notes, calcErr.Error())
		}

		err = s.payrunRepo.TransitionBatch(ctx, organizationID, batch.ID, payrun.Transition{
			From:    payrun.StatusCalculating,
			To:      payrun.StatusDraft,
			ActorID: userID,
			At:      time.Now().UTC(),
			Notes:   fmt.Sprintf("%d employee(s) failed: %s", len(calcErrs), strings.Join(notes, "; ")),
		})
		if err != nil {
			return payrun.RunSummary{}, err
		}

		refreshed, err := s.payrunRepo.GetBatchByID(ctx, organizationID, batch.ID)
		if err != nil {
			return payrun.RunSummary{}, err
		}
		summary.Batch = payrun.ToBatchResponse(refreshed)
		return summary, nil
	}

	byID := make(map[string]employee.Employee, len(eligible))
	for _, emp := range eligible {
		byID[emp.ID] = emp
	}
	slips := make([]payrun.PayslipRecord, 0, len(results))
	for _, result := range results {
		slip, err := snapshotFromResult(batch.ID, byID[result.EmployeeID], result)
		if err != nil {
			return payrun.RunSummary{}, err
		}
		slips = append(slips, slip)
	}
	applyTotals(batch, slips)

	now := time.Now().UTC()
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payrunRepo.ReplaceSnapshots(txCtx, batch.ID, slips); err != nil {
			return err
		}
		if err := s.earningsRepo.ReleaseProcessed(txCtx, batch.ID); err != nil {
			return err
		}
		if err := s.earningsRepo.MarkProcessed(txCtx, oneOffIDs, batch.ID, now); err != nil {
			return err
		}
		if err := s.payrunRepo.UpdateBatchTotals(txCtx, batch.ID, batch); err != nil {
			return err
		}
		return s.payrunRepo.TransitionBatch(txCtx, organizationID, batch.ID, payrun.Transition{
			From:    payrun.StatusCalculating,
			To:      payrun.StatusCalculated,
			ActorID: userID,
			At:      now,
			Notes:   fmt.Sprintf("calculated %d employee(s)", len(slips)),
		})
	})
	if err != nil {
		return payrun.RunSummary{}, err
	}

	refreshed, err := s.payrunRepo.GetBatchByID(ctx, organizationID, batch.ID)
	if err != nil {
		return payrun.RunSummary{}, err
	}

	return payrun.RunSummary{
		Batch:     payrun.ToBatchResponse(refreshed),
		Processed: len(slips),
	}, nil
}

func (s *PayrunServiceImpl) eligibleEmployees(ctx context.Context, organizationID string, periodEnd time.Time, req payrun.CalculateBatchRequest) ([]employee.Employee, error) {
	if req.IncludeAllEmployees {
		return s.employeeRepo.ListEligible(ctx, organizationID, periodEnd)
	}

	selected, err := s.employeeRepo.ListByIDs(ctx, organizationID, req.SelectedEmployeeIDs)
	if err != nil {
		return nil, err
	}
	eligible := make([]employee.Employee, 0, len(selected))
	for _, emp := range selected {
		if emp.IsActive && !emp.DateHired.After(periodEnd) {
			eligible = append(eligible, emp)
		}
	}
	return eligible, nil
}

func (s *PayrunServiceImpl) collectInputs(ctx context.Context, organizationID string, batch *payrun.PayrollBatch, eligible []employee.Employee) ([]calculation.Input, []string, error) {
	ids := make([]string, 0, len(eligible))
	for _, emp := range eligible {
		ids = append(ids, emp.ID)
	}

	allowances, err := s.employeeRepo.ListAllowancesForEmployees(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	deductions, err := s.employeeRepo.ListDeductionsForEmployees(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	variable, err := s.earningsRepo.ListEarningsForPeriod(ctx, organizationID, batch.PeriodStart, batch.PeriodEnd)
	if err != nil {
		return nil, nil, err
	}
	oneOffs, err := s.earningsRepo.ListUnprocessedForPeriod(ctx, organizationID, batch.PeriodStart, batch.PeriodEnd, batch.ID)
	if err != nil {
		return nil, nil, err
	}

	var oneOffIDs []string
	inputs := make([]calculation.Input, 0, len(eligible))
	for _, emp := range eligible {
		in := calculation.Input{
			Employee:    emp,
			Allowances:  allowances[emp.ID],
			Recurring:   deductions[emp.ID],
			OneOff:      oneOffs[emp.ID],
			PeriodStart: batch.PeriodStart,
			PeriodEnd:   batch.PeriodEnd,
		}
		if earning, ok := variable[emp.ID]; ok {
			e := earning
			in.Variable = &e
		}
		for _, d := range in.OneOff {
			oneOffIDs = append(oneOffIDs, d.ID)
		}
		inputs = append(inputs, in)
	}

	return inputs, oneOffIDs, nil
}

// calculateConcurrently fans the inputs out over a bounded worker pool. Each
// worker owns its results; a single collector assembles them, so no shared
// state is written concurrently.
func (s *PayrunServiceImpl) calculateConcurrently(ctx context.Context, rates *calculation.RateContext, inputs []calculation.Input) ([]*calculation.Result, []calculation.EmployeeError) {
	engine := calculation.NewPayEngine(rates)

	type outcome struct {
		result *calculation.Result
		err    *calculation.EmployeeError
	}

	jobs := make(chan calculation.Input)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				result, err := engine.CalculateEmployee(in)
				if err != nil {
					outcomes <- outcome{err: &calculation.EmployeeError{
						EmployeeID:     in.Employee.ID,
						EmployeeNumber: in.Employee.EmployeeNumber,
						Err:            err,
					}}
					continue
				}
				outcomes <- outcome{result: result}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, in := range inputs {
			select {
			case jobs <- in:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var (
		results []*calculation.Result
		errs    []calculation.EmployeeError
	)
	for out := range outcomes {
		if out.err != nil {
			errs = append(errs, *out.err)
			continue
		}
		results = append(results, out.result)
	}

	return results, errs
}

func snapshotFromResult(batchID string, emp employee.Employee, result *calculation.Result) (payrun.PayslipRecord, error) {
	details, err := json.Marshal(result.Details)
	if err != nil {
		return payrun.PayslipRecord{}, fmt.Errorf("failed to encode calculation details: %w", err)
	}

	return payrun.PayslipRecord{
		ID:         uuid.NewString(),
		BatchID:    batchID,
		EmployeeID: emp.ID,

		EmployeeNumber: emp.EmployeeNumber,
		EmployeeName:   emp.FullName(),
		KRAPin:         emp.KRAPin,
		NSSFNumber:     emp.NSSFNumber,
		SHANumber:      emp.SHANumber,
		JobTitle:       emp.JobTitle,
		Department:     emp.Department,
		BankName:       emp.BankName,
		BankBranch:     emp.BankBranch,
		AccountNumber:  emp.AccountNumber,
		AccountName:    emp.AccountName,

		BasicSalary:        result.Gross.BasicSalary,
		HouseAllowance:     result.Gross.HouseAllowance,
		TransportAllowance: result.Gross.TransportAllowance,
		MedicalAllowance:   result.Gross.MedicalAllowance,
		OtherAllowances:    result.Gross.OtherAllowances,
		TotalAllowances:    result.Gross.TotalAllowances,
		OvertimeHours:      result.Gross.OvertimeHours,
		OvertimePay:        result.Gross.OvertimePay,
		BonusAmount:        result.Gross.BonusAmount,
		CommissionPay:      result.Gross.CommissionPay,
		GrossPay:           result.Gross.Total,

		NSSFPensionablePay: result.NSSFPensionablePay,
		NSSFEmployee:       result.NSSFEmployee,
		NSSFEmployer:       result.NSSFEmployer,
		SHIFContribution:   result.SHIFContribution,
		AHLEmployee:        result.AHLEmployee,
		AHLEmployer:        result.AHLEmployer,

		TaxableIncome:    result.TaxableIncome,
		GrossTax:         result.GrossTax,
		PersonalRelief:   result.Reliefs.Personal,
		InsuranceRelief:  result.Reliefs.Insurance,
		PensionRelief:    result.Reliefs.Pension,
		MortgageRelief:   result.Reliefs.Mortgage,
		DisabilityRelief: result.Reliefs.Disability,
		PAYETax:          result.PAYETax,

		SaccoDeductions:   result.Voluntary.Sacco,
		LoanRepayments:    result.Voluntary.Loans,
		SalaryAdvance:     result.Voluntary.Advance,
		WelfareDeductions: result.Voluntary.Welfare,
		OtherDeductions:   result.Voluntary.Other,

		TotalDeductions: result.TotalDeductions,
		NetPay:          result.NetPay,

		CalculationDetails: details,
		Warnings:           result.Warnings,
	}, nil
}

// applyTotals derives batch totals by summing the snapshots, never by
// incremental accumulation.
func applyTotals(batch *payrun.PayrollBatch, slips []payrun.PayslipRecord) {
	batch.TotalEmployees = len(slips)
	batch.TotalGrossPay = decimal.Zero
	batch.TotalNetPay = decimal.Zero
	batch.TotalPAYETax = decimal.Zero
	batch.TotalNSSF = decimal.Zero
	batch.TotalSHIF = decimal.Zero
	batch.TotalAHL = decimal.Zero

	for _, slip := range slips {
		batch.TotalGrossPay = batch.TotalGrossPay.Add(slip.GrossPay)
		batch.TotalNetPay = batch.TotalNetPay.Add(slip.NetPay)
		batch.TotalPAYETax = batch.TotalPAYETax.Add(slip.PAYETax)
		batch.TotalNSSF = batch.TotalNSSF.Add(slip.NSSFEmployee)
		batch.TotalSHIF = batch.TotalSHIF.Add(slip.SHIFContribution)
		batch.TotalAHL = batch.TotalAHL.Add(slip.AHLEmployee)
	}
}

func (s *PayrunServiceImpl) Preview(ctx context.Context, req payrun.PreviewRequest) (payrun.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayslipResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	emp, err := s.employeeRepo.GetByID(ctx, organizationID, req.EmployeeID)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	rates, err := calculation.ResolveRateContext(ctx, s.rateRepo, periodEnd)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	allowances, err := s.employeeRepo.ListAllowances(ctx, emp.ID)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}
	deductions, err := s.employeeRepo.ListDeductions(ctx, emp.ID)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}
	oneOffs, err := s.earningsRepo.ListUnprocessedForPeriod(ctx, organizationID, periodStart, periodEnd, "")
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	in := calculation.Input{
		Employee:    *emp,
		Allowances:  allowances,
		Recurring:   deductions,
		OneOff:      oneOffs[emp.ID],
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if earning, err := s.earningsRepo.GetEarning(ctx, organizationID, emp.ID, periodStart, periodEnd); err == nil {
		in.Variable = earning
	} else if !errors.Is(err, earnings.ErrEarningNotFound) {
		return payrun.PayslipResponse{}, err
	}

	engine := calculation.NewPayEngine(rates)
	result, err := engine.CalculateEmployee(in)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	slip, err := snapshotFromResult("", *emp, result)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}
	slip.ID = ""

	return payrun.ToPayslipResponse(&slip), nil
}

func (s *PayrunServiceImpl) GetBatch(ctx context.Context, id string) (payrun.BatchResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.BatchResponse{}, err
	}

	batch, err := s.payrunRepo.GetBatchByID(ctx, organizationID, id)
	if err != nil {
		return payrun.BatchResponse{}, err
	}

	return payrun.ToBatchResponse(batch), nil
}

func (s *PayrunServiceImpl) ListBatches(ctx context.Context, status *payrun.BatchStatus) ([]payrun.BatchResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	batches, err := s.payrunRepo.ListBatches(ctx, organizationID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]payrun.BatchResponse, 0, len(batches))
	for i := range batches {
		responses = append(responses, payrun.ToBatchResponse(&batches[i]))
	}
	return responses, nil
}

func (s *PayrunServiceImpl) ListPayslips(ctx context.Context, batchID string) ([]payrun.PayslipResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.payrunRepo.GetBatchByID(ctx, organizationID, batchID); err != nil {
		return nil, err
	}

	slips, err := s.payrunRepo.ListSnapshots(ctx, organizationID, batchID)
	if err != nil {
		return nil, err
	}

	responses := make([]payrun.PayslipResponse, 0, len(slips))
	for i := range slips {
		responses = append(responses, payrun.ToPayslipResponse(&slips[i]))
	}
	return responses, nil
}

func (s *PayrunServiceImpl) Review(ctx context.Context, batchID, notes string) (payrun.BatchResponse, error) {
	return s.transition(ctx, batchID, payrun.StatusReviewed, notes)
}

func (s *PayrunServiceImpl) Approve(ctx context.Context, batchID, notes string) (payrun.BatchResponse, error) {
	return s.transition(ctx, batchID, payrun.StatusApproved, notes)
}

func (s *PayrunServiceImpl) Lock(ctx context.Context, batchID string) (payrun.BatchResponse, error) {
	return s.transition(ctx, batchID, payrun.StatusLocked, "")
}

func (s *PayrunServiceImpl) Remit(ctx context.Context, batchID, notes string) (payrun.BatchResponse, error) {
	return s.transition(ctx, batchID, payrun.StatusRemitted, notes)
}

func (s *PayrunServiceImpl) Cancel(ctx context.Context, batchID, reason string) (payrun.BatchResponse, error) {
	return s.transition(ctx, batchID, payrun.StatusCancelled, reason)
}

func (s *PayrunServiceImpl) transition(ctx context.Context, batchID string, to payrun.BatchStatus, notes string) (payrun.BatchResponse, error) {
	organizationID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.BatchResponse{}, err
	}

	batch, err := s.payrunRepo.GetBatchByID(ctx, organizationID, batchID)
	if err != nil {
		return payrun.BatchResponse{}, err
	}
	if !batch.Status.CanTransitionTo(to) {
		return payrun.BatchResponse{}, payrun.ErrInvalidStatusTransition
	}

	err = s.payrunRepo.TransitionBatch(ctx, organizationID, batchID, payrun.Transition{
		From:    batch.Status,
		To:      to,
		ActorID: userID,
		At:      time.Now().UTC(),
		Notes:   notes,
	})
	if err != nil {
		return payrun.BatchResponse{}, err
	}

	refreshed, err := s.payrunRepo.GetBatchByID(ctx, organizationID, batchID)
	if err != nil {
		return payrun.BatchResponse{}, err
	}
	return payrun.ToBatchResponse(refreshed), nil
}

// UpdatePayment touches only the delivery and payment tracking fields. These
// stay writable after lock; everything else on a payslip does not.
func (s *PayrunServiceImpl) UpdatePayment(ctx context.Context, payslipID string, req payrun.UpdatePaymentRequest) (payrun.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payrun.PayslipResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}

	if _, err := s.payrunRepo.GetSnapshotByID(ctx, organizationID, payslipID); err != nil {
		return payrun.PayslipResponse{}, err
	}

	now := time.Now().UTC()
	update := payrun.PaymentUpdate{
		PaymentReference: req.PaymentReference,
	}
	if req.PayslipSent != nil {
		update.PayslipSent = req.PayslipSent
		if *req.PayslipSent {
			update.PayslipSentAt = &now
		}
	}
	if req.PaymentProcessed != nil {
		update.PaymentProcessed = req.PaymentProcessed
		if *req.PaymentProcessed {
			update.ProcessedAt = &now
		}
	}

	if err := s.payrunRepo.UpdateSnapshotPayment(ctx, organizationID, payslipID, update); err != nil {
		return payrun.PayslipResponse{}, err
	}

	slip, err := s.payrunRepo.GetSnapshotByID(ctx, organizationID, payslipID)
	if err != nil {
		return payrun.PayslipResponse{}, err
	}
	return payrun.ToPayslipResponse(slip), nil
}
