package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`

	NationalID string `json:"national_id"`
	KRAPin     string `json:"kra_pin"`
	NSSFNumber string `json:"nssf_number"`
	SHANumber  string `json:"sha_number"`

	JobTitle   string `json:"job_title"`
	Department string `json:"department"`
	DateHired  string `json:"date_hired"`

	BasicSalary  decimal.Decimal `json:"basic_salary"`
	PayFrequency string          `json:"pay_frequency"`

	HasDisabilityExemption bool            `json:"has_disability_exemption"`
	InsuranceReliefAmount  decimal.Decimal `json:"insurance_relief_amount"`
	PensionContribution    decimal.Decimal `json:"pension_contribution"`
	MortgageInterest       decimal.Decimal `json:"mortgage_interest"`

	BankName      string `json:"bank_name"`
	BankBranch    string `json:"bank_branch"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

var payFrequencies = []string{
	string(PayFrequencyMonthly),
	string(PayFrequencyWeekly),
	string(PayFrequencyDaily),
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeNumber == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "employee number is required"})
	}
	if r.FirstName == "" {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if r.LastName == "" {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{Field: "national_id", Message: "national ID must be 8 digits"})
	}
	if !validator.IsValidKRAPIN(r.KRAPin) {
		errs = append(errs, validator.ValidationError{Field: "kra_pin", Message: "KRA PIN format is invalid"})
	}
	if _, ok := validator.IsValidDate(r.DateHired); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_hired", Message: "date hired must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "pay frequency must be one of MONTHLY, WEEKLY, DAILY"})
	}
	if r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic salary must be greater than zero"})
	}
	if r.InsuranceReliefAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "insurance_relief_amount", Message: "insurance relief amount cannot be negative"})
	}
	if r.PensionContribution.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pension_contribution", Message: "pension contribution cannot be negative"})
	}
	if r.MortgageInterest.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "mortgage_interest", Message: "mortgage interest cannot be negative"})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	JobTitle   *string `json:"job_title"`
	Department *string `json:"department"`

	BasicSalary  *decimal.Decimal `json:"basic_salary"`
	PayFrequency *string          `json:"pay_frequency"`

	HasDisabilityExemption *bool            `json:"has_disability_exemption"`
	InsuranceReliefAmount  *decimal.Decimal `json:"insurance_relief_amount"`
	PensionContribution    *decimal.Decimal `json:"pension_contribution"`
	MortgageInterest       *decimal.Decimal `json:"mortgage_interest"`

	BankName      *string `json:"bank_name"`
	BankBranch    *string `json:"bank_branch"`
	AccountNumber *string `json:"account_number"`
	AccountName   *string `json:"account_name"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayFrequency != nil && !validator.IsInSlice(*r.PayFrequency, payFrequencies) {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "pay frequency must be one of MONTHLY, WEEKLY, DAILY"})
	}
	if r.BasicSalary != nil && r.BasicSalary.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic salary must be greater than zero"})
	}
	if r.InsuranceReliefAmount != nil && r.InsuranceReliefAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "insurance_relief_amount", Message: "insurance relief amount cannot be negative"})
	}
	if r.PensionContribution != nil && r.PensionContribution.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pension_contribution", Message: "pension contribution cannot be negative"})
	}
	if r.MortgageInterest != nil && r.MortgageInterest.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "mortgage_interest", Message: "mortgage interest cannot be negative"})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type AllowanceRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date"`
}

var allowanceCategories = []string{
	string(AllowanceHouse),
	string(AllowanceTransport),
	string(AllowanceMedical),
	string(AllowanceOther),
}

func (r AllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Category, allowanceCategories) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be one of HOUSE, TRANSPORT, MEDICAL, OTHER"})
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective date must be in YYYY-MM-DD format"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be in YYYY-MM-DD format"})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type DeductionRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date"`
}

var deductionCategories = []string{
	string(DeductionSacco),
	string(DeductionLoan),
	string(DeductionHELB),
	string(DeductionAdvance),
	string(DeductionWelfare),
	string(DeductionOther),
}

func (r DeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Category, deductionCategories) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be one of SACCO, LOAN, HELB, ADVANCE, WELFARE, OTHER"})
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "effective date must be in YYYY-MM-DD format"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be in YYYY-MM-DD format"})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	KRAPin         string `json:"kra_pin"`
	NSSFNumber     string `json:"nssf_number"`
	SHANumber      string `json:"sha_number"`
	JobTitle       string `json:"job_title"`
	Department     string `json:"department"`
	DateHired      string `json:"date_hired"`
	IsActive       bool   `json:"is_active"`

	BasicSalary  decimal.Decimal `json:"basic_salary"`
	PayFrequency string          `json:"pay_frequency"`

	HasDisabilityExemption bool            `json:"has_disability_exemption"`
	InsuranceReliefAmount  decimal.Decimal `json:"insurance_relief_amount"`
	PensionContribution    decimal.Decimal `json:"pension_contribution"`
	MortgageInterest       decimal.Decimal `json:"mortgage_interest"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                     e.ID,
		EmployeeNumber:         e.EmployeeNumber,
		FullName:               e.FullName(),
		Email:                  e.Email,
		KRAPin:                 e.KRAPin,
		NSSFNumber:             e.NSSFNumber,
		SHANumber:              e.SHANumber,
		JobTitle:               e.JobTitle,
		Department:             e.Department,
		DateHired:              e.DateHired.Format("2006-01-02"),
		IsActive:               e.IsActive,
		BasicSalary:            e.BasicSalary,
		PayFrequency:           string(e.PayFrequency),
		HasDisabilityExemption: e.HasDisabilityExemption,
		InsuranceReliefAmount:  e.InsuranceReliefAmount,
		PensionContribution:    e.PensionContribution,
		MortgageInterest:       e.MortgageInterest,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}
