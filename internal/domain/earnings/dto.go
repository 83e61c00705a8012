package earnings

import (
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

type RecordEarningRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	OvertimeRate     decimal.Decimal `json:"overtime_rate"`
	BonusAmount      decimal.Decimal `json:"bonus_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`

	Notes string `json:"notes"`
}

func (r RecordEarningRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
	}
	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period start must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end must be in YYYY-MM-DD format"})
	}
	if r.OvertimeHours.IsNegative() || r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "overtime hours and rate cannot be negative"})
	}
	if r.BonusAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus_amount", Message: "bonus amount cannot be negative"})
	}
	if r.CommissionAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "commission_amount", Message: "commission amount cannot be negative"})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type OneOffDeductionRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DeductionDate string          `json:"deduction_date"`
}

func (r OneOffDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee ID is required"})
	}
	if r.Category == "" {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category is required"})
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.DeductionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "deduction_date", Message: "deduction date must be in YYYY-MM-DD format"})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
