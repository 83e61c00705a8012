package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayFrequency string

const (
	PayFrequencyMonthly PayFrequency = "MONTHLY"
	PayFrequencyWeekly  PayFrequency = "WEEKLY"
	PayFrequencyDaily   PayFrequency = "DAILY"
)

// Monthly-equivalent multipliers: 4.33 average weeks and 22 working days.
var (
	weeksPerMonth = decimal.NewFromFloat(4.33)
	daysPerMonth  = decimal.NewFromInt(22)
)

// Employee carries the identification and compensation profile needed for a
// statutory payroll calculation.
type Employee struct {
	ID             string
	OrganizationID string
	EmployeeNumber string
	FirstName      string
	MiddleName     string
	LastName       string
	Email          string

	// Mandatory Kenyan identification numbers
	NationalID string
	KRAPin     string
	NSSFNumber string
	SHANumber  string

	JobTitle   string
	Department string
	DateHired  time.Time
	IsActive   bool

	// Compensation profile
	BasicSalary  decimal.Decimal
	PayFrequency PayFrequency

	// Declared relief inputs
	HasDisabilityExemption bool
	InsuranceReliefAmount  decimal.Decimal
	PensionContribution    decimal.Decimal
	MortgageInterest       decimal.Decimal

	// Bank details (snapshotted onto payslips)
	BankName      string
	BankBranch    string
	AccountNumber string
	AccountName   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	name := e.FirstName
	if e.MiddleName != "" {
		name += " " + e.MiddleName
	}
	return name + " " + e.LastName
}

// MonthlyBasicSalary normalizes the basic salary to a monthly equivalent.
func (e Employee) MonthlyBasicSalary() decimal.Decimal {
	switch e.PayFrequency {
	case PayFrequencyWeekly:
		return e.BasicSalary.Mul(weeksPerMonth)
	case PayFrequencyDaily:
		return e.BasicSalary.Mul(daysPerMonth)
	default:
		return e.BasicSalary
	}
}

type AllowanceCategory string

const (
	AllowanceHouse     AllowanceCategory = "HOUSE"
	AllowanceTransport AllowanceCategory = "TRANSPORT"
	AllowanceMedical   AllowanceCategory = "MEDICAL"
	AllowanceOther     AllowanceCategory = "OTHER"
)

// RecurringAllowance is a fixed monthly allowance with an effective window.
type RecurringAllowance struct {
	ID            string
	EmployeeID    string
	Category      AllowanceCategory
	Description   string
	Amount        decimal.Decimal
	IsActive      bool
	EffectiveDate time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesTo reports whether the allowance is active and its window overlaps
// the pay period.
func (a RecurringAllowance) AppliesTo(periodStart, periodEnd time.Time) bool {
	if !a.IsActive || a.EffectiveDate.After(periodEnd) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(periodStart)
}

type DeductionCategory string

const (
	DeductionSacco   DeductionCategory = "SACCO"
	DeductionLoan    DeductionCategory = "LOAN"
	DeductionHELB    DeductionCategory = "HELB"
	DeductionAdvance DeductionCategory = "ADVANCE"
	DeductionWelfare DeductionCategory = "WELFARE"
	DeductionOther   DeductionCategory = "OTHER"
)

// RecurringDeduction is a fixed monthly voluntary deduction with an effective
// window (loan repayments, SACCO contributions and the like).
type RecurringDeduction struct {
	ID            string
	EmployeeID    string
	Category      DeductionCategory
	Description   string
	Amount        decimal.Decimal
	IsActive      bool
	EffectiveDate time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d RecurringDeduction) AppliesTo(periodStart, periodEnd time.Time) bool {
	if !d.IsActive || d.EffectiveDate.After(periodEnd) {
		return false
	}
	return d.EndDate == nil || !d.EndDate.Before(periodStart)
}
