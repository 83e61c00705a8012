package response

import (
	"errors"
	"net/http"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/domain/payrun"
	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
	"github.com/payrollhq/payroll-backend-go/internal/service/calculation"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Rate table errors
	case errors.Is(err, ratetable.ErrRateTableNotFound):
		NotFound(w, "Rate table not found")
	case errors.Is(err, ratetable.ErrRateTableConflict):
		Conflict(w, "Multiple rate tables are effective for the same date")
	case errors.Is(err, ratetable.ErrRateTableExists):
		Conflict(w, "A rate table already covers this category and date range")
	case errors.Is(err, ratetable.ErrInvalidCategory):
		BadRequest(w, "Unknown rate table category", nil)

	// Statutory configuration missing during a calculation
	case errors.Is(err, calculation.ErrConfigurationMissing):
		UnprocessableEntity(w, "CONFIGURATION_MISSING", err.Error())

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrAllowanceNotFound):
		NotFound(w, "Recurring allowance not found")
	case errors.Is(err, employee.ErrDeductionNotFound):
		NotFound(w, "Recurring deduction not found")

	// Earnings errors
	case errors.Is(err, earnings.ErrEarningNotFound):
		NotFound(w, "Monthly earning not found")
	case errors.Is(err, earnings.ErrDeductionNotFound):
		NotFound(w, "One-off deduction not found")
	case errors.Is(err, earnings.ErrDeductionProcessed):
		Conflict(w, "One-off deduction was already processed in a batch")

	// Payrun errors
	case errors.Is(err, payrun.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payrun.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payrun.ErrBatchNumberExists):
		Conflict(w, "Batch number already exists")
	case errors.Is(err, payrun.ErrBatchLocked):
		Conflict(w, "Payroll batch is locked")
	case errors.Is(err, payrun.ErrInvalidStatusTransition):
		Conflict(w, "Batch status does not allow this action")
	case errors.Is(err, payrun.ErrPayslipImmutable):
		Conflict(w, "Payslip belongs to a locked batch")
	case errors.Is(err, payrun.ErrBatchConcurrentlyUpdated):
		Conflict(w, "Batch was modified by another request, retry")
	case errors.Is(err, payrun.ErrNoEligibleEmployees):
		BadRequest(w, "No eligible employees for this batch", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
