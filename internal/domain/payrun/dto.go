package payrun

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

type CalculateBatchRequest struct {
	BatchNumber string `json:"batch_number"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PayDate     string `json:"pay_date"`

	IncludeAllEmployees bool     `json:"include_all_employees"`
	SelectedEmployeeIDs []string `json:"selected_employee_ids"`
}

func (r CalculateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BatchNumber == "" {
		errs = append(errs, validator.ValidationError{Field: "batch_number", Message: "batch number is required"})
	}
	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period start must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "pay date must be in YYYY-MM-DD format"})
	}

	if errs.IsEmpty() {
		start, _ := time.Parse("2006-01-02", r.PeriodStart)
		end, _ := time.Parse("2006-01-02", r.PeriodEnd)
		payDate, _ := time.Parse("2006-01-02", r.PayDate)
		if !start.Before(end) {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period start must be before period end"})
		}
		if !payDate.After(end) {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "pay date must be after period end"})
		}
	}
	if !r.IncludeAllEmployees && len(r.SelectedEmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "selected_employee_ids", Message: "select employees or set include_all_employees"})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type TransitionRequest struct {
	Notes string `json:"notes"`
}

type UpdatePaymentRequest struct {
	PayslipSent      *bool   `json:"payslip_sent"`
	PaymentProcessed *bool   `json:"payment_processed"`
	PaymentReference *string `json:"payment_reference"`
}

func (r UpdatePaymentRequest) Validate() error {
	if r.PayslipSent == nil && r.PaymentProcessed == nil && r.PaymentReference == nil {
		return validator.ValidationErrors{
			{Field: "payment", Message: "at least one payment tracking field is required"},
		}
	}
	return nil
}

type PreviewRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r PreviewRequest) Validate() error {
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

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type BatchResponse struct {
	ID          string `json:"id"`
	BatchNumber string `json:"batch_number"`
	Status      string `json:"status"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PayDate     string `json:"pay_date"`

	TotalEmployees int             `json:"total_employees"`
	TotalGrossPay  decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay    decimal.Decimal `json:"total_net_pay"`
	TotalPAYETax   decimal.Decimal `json:"total_paye_tax"`
	TotalNSSF      decimal.Decimal `json:"total_nssf"`
	TotalSHIF      decimal.Decimal `json:"total_shif"`
	TotalAHL       decimal.Decimal `json:"total_ahl"`

	CalculationNotes string     `json:"calculation_notes,omitempty"`
	CalculatedAt     *time.Time `json:"calculated_at,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	LockedAt         *time.Time `json:"locked_at,omitempty"`
	RemittedAt       *time.Time `json:"remitted_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunSummary is the outcome of one calculate request: the batch after the
// run, plus the per-employee failures that kept it in DRAFT, if any.
type RunSummary struct {
	Batch     BatchResponse        `json:"batch"`
	Processed int                  `json:"processed"`
	Failed    int                  `json:"failed"`
	Errors    []BatchEmployeeError `json:"errors,omitempty"`
}

type BatchEmployeeError struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	Message        string `json:"message"`
}

type PayslipResponse struct {
	ID             string `json:"id"`
	BatchID        string `json:"batch_id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	KRAPin         string `json:"kra_pin"`
	JobTitle       string `json:"job_title,omitempty"`
	Department     string `json:"department,omitempty"`

	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HouseAllowance     decimal.Decimal `json:"house_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	TotalAllowances    decimal.Decimal `json:"total_allowances"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	BonusAmount        decimal.Decimal `json:"bonus_amount"`
	CommissionPay      decimal.Decimal `json:"commission_pay"`
	GrossPay           decimal.Decimal `json:"gross_pay"`

	NSSFPensionablePay decimal.Decimal `json:"nssf_pensionable_pay"`
	NSSFEmployee       decimal.Decimal `json:"nssf_employee"`
	NSSFEmployer       decimal.Decimal `json:"nssf_employer"`
	SHIFContribution   decimal.Decimal `json:"shif_contribution"`
	AHLEmployee        decimal.Decimal `json:"ahl_employee"`
	AHLEmployer        decimal.Decimal `json:"ahl_employer"`

	TaxableIncome    decimal.Decimal `json:"taxable_income"`
	GrossTax         decimal.Decimal `json:"gross_tax"`
	PersonalRelief   decimal.Decimal `json:"personal_relief"`
	InsuranceRelief  decimal.Decimal `json:"insurance_relief"`
	PensionRelief    decimal.Decimal `json:"pension_relief"`
	MortgageRelief   decimal.Decimal `json:"mortgage_relief"`
	DisabilityRelief decimal.Decimal `json:"disability_relief"`
	PAYETax          decimal.Decimal `json:"paye_tax"`

	SaccoDeductions   decimal.Decimal `json:"sacco_deductions"`
	LoanRepayments    decimal.Decimal `json:"loan_repayments"`
	SalaryAdvance     decimal.Decimal `json:"salary_advance"`
	WelfareDeductions decimal.Decimal `json:"welfare_deductions"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`

	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`

	CalculationDetails json.RawMessage `json:"calculation_details,omitempty"`
	Warnings           []string        `json:"warnings,omitempty"`

	PayslipSent        bool       `json:"payslip_sent"`
	PayslipSentAt      *time.Time `json:"payslip_sent_at,omitempty"`
	PaymentProcessed   bool       `json:"payment_processed"`
	PaymentProcessedAt *time.Time `json:"payment_processed_at,omitempty"`
	PaymentReference   string     `json:"payment_reference,omitempty"`
}

func ToPayslipResponse(p *PayslipRecord) PayslipResponse {
	return PayslipResponse{
		ID:                 p.ID,
		BatchID:            p.BatchID,
		EmployeeID:         p.EmployeeID,
		EmployeeNumber:     p.EmployeeNumber,
		EmployeeName:       p.EmployeeName,
		KRAPin:             p.KRAPin,
		JobTitle:           p.JobTitle,
		Department:         p.Department,
		BasicSalary:        p.BasicSalary,
		HouseAllowance:     p.HouseAllowance,
		TransportAllowance: p.TransportAllowance,
		MedicalAllowance:   p.MedicalAllowance,
		OtherAllowances:    p.OtherAllowances,
		TotalAllowances:    p.TotalAllowances,
		OvertimeHours:      p.OvertimeHours,
		OvertimePay:        p.OvertimePay,
		BonusAmount:        p.BonusAmount,
		CommissionPay:      p.CommissionPay,
		GrossPay:           p.GrossPay,
		NSSFPensionablePay: p.NSSFPensionablePay,
		NSSFEmployee:       p.NSSFEmployee,
		NSSFEmployer:       p.NSSFEmployer,
		SHIFContribution:   p.SHIFContribution,
		AHLEmployee:        p.AHLEmployee,
		AHLEmployer:        p.AHLEmployer,
		TaxableIncome:      p.TaxableIncome,
		GrossTax:           p.GrossTax,
		PersonalRelief:     p.PersonalRelief,
		InsuranceRelief:    p.InsuranceRelief,
		PensionRelief:      p.PensionRelief,
		MortgageRelief:     p.MortgageRelief,
		DisabilityRelief:   p.DisabilityRelief,
		PAYETax:            p.PAYETax,
		SaccoDeductions:    p.SaccoDeductions,
		LoanRepayments:     p.LoanRepayments,
		SalaryAdvance:      p.SalaryAdvance,
		WelfareDeductions:  p.WelfareDeductions,
		OtherDeductions:    p.OtherDeductions,
		TotalDeductions:    p.TotalDeductions,
		NetPay:             p.NetPay,
		CalculationDetails: json.RawMessage(p.CalculationDetails),
		Warnings:           p.Warnings,
		PayslipSent:        p.PayslipSent,
		PayslipSentAt:      p.PayslipSentAt,
		PaymentProcessed:   p.PaymentProcessed,
		PaymentProcessedAt: p.PaymentProcessedAt,
		PaymentReference:   p.PaymentReference,
	}
}

func ToBatchResponse(b *PayrollBatch) BatchResponse {
	return BatchResponse{
		ID:               b.ID,
		BatchNumber:      b.BatchNumber,
		Status:           string(b.Status),
		PeriodStart:      b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        b.PeriodEnd.Format("2006-01-02"),
		PayDate:          b.PayDate.Format("2006-01-02"),
		TotalEmployees:   b.TotalEmployees,
		TotalGrossPay:    b.TotalGrossPay,
		TotalNetPay:      b.TotalNetPay,
		TotalPAYETax:     b.TotalPAYETax,
		TotalNSSF:        b.TotalNSSF,
		TotalSHIF:        b.TotalSHIF,
		TotalAHL:         b.TotalAHL,
		CalculationNotes: b.CalculationNotes,
		CalculatedAt:     b.CalculatedAt,
		ReviewedAt:       b.ReviewedAt,
		ApprovedAt:       b.ApprovedAt,
		LockedAt:         b.LockedAt,
		RemittedAt:       b.RemittedAt,
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
