package payrun

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollBatch is one payroll run for one organization and pay period.
// Totals are always derived from the batch's current payslip snapshots.
type PayrollBatch struct {
	ID             string
	OrganizationID string
	BatchNumber    string
	Status         BatchStatus

	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time

	IncludeAllEmployees bool
	SelectedEmployeeIDs []string

	TotalEmployees int
	TotalGrossPay  decimal.Decimal
	TotalNetPay    decimal.Decimal
	TotalPAYETax   decimal.Decimal
	TotalNSSF      decimal.Decimal
	TotalSHIF      decimal.Decimal
	TotalAHL       decimal.Decimal

	CalculationNotes string
	CalculatedBy     string
	CalculatedAt     *time.Time
	ReviewedBy       string
	ReviewedAt       *time.Time
	ReviewNotes      string
	ApprovedBy       string
	ApprovedAt       *time.Time
	ApprovalNotes    string
	LockedBy         string
	LockedAt         *time.Time
	RemittedBy       string
	RemittedAt       *time.Time
	RemittanceNotes  string
	CancelledBy      string
	CancelledAt      *time.Time
	CancelReason     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayslipRecord is the immutable per-employee result of a batch calculation.
// Employee identification and bank details are snapshotted at calculation time
// so later profile edits do not rewrite history.
type PayslipRecord struct {
	ID         string
	BatchID    string
	EmployeeID string

	// Employee snapshot
	EmployeeNumber string
	EmployeeName   string
	KRAPin         string
	NSSFNumber     string
	SHANumber      string
	JobTitle       string
	Department     string
	BankName       string
	BankBranch     string
	AccountNumber  string
	AccountName    string

	// Earnings
	BasicSalary        decimal.Decimal
	HouseAllowance     decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	TotalAllowances    decimal.Decimal
	OvertimeHours      decimal.Decimal
	OvertimePay        decimal.Decimal
	BonusAmount        decimal.Decimal
	CommissionPay      decimal.Decimal
	GrossPay           decimal.Decimal

	// Statutory deductions
	NSSFPensionablePay decimal.Decimal
	NSSFEmployee       decimal.Decimal
	NSSFEmployer       decimal.Decimal
	SHIFContribution   decimal.Decimal
	AHLEmployee        decimal.Decimal
	AHLEmployer        decimal.Decimal

	// Tax
	TaxableIncome    decimal.Decimal
	GrossTax         decimal.Decimal
	PersonalRelief   decimal.Decimal
	InsuranceRelief  decimal.Decimal
	PensionRelief    decimal.Decimal
	MortgageRelief   decimal.Decimal
	DisabilityRelief decimal.Decimal
	PAYETax          decimal.Decimal

	// Voluntary deductions
	SaccoDeductions   decimal.Decimal
	LoanRepayments    decimal.Decimal
	SalaryAdvance     decimal.Decimal
	WelfareDeductions decimal.Decimal
	OtherDeductions   decimal.Decimal

	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	// Full audit trail of the calculation as produced by the engine
	CalculationDetails []byte
	Warnings           []string

	// Post-lock payment and delivery tracking (the only mutable fields once
	// the batch is locked)
	PayslipSent        bool
	PayslipSentAt      *time.Time
	PaymentProcessed   bool
	PaymentProcessedAt *time.Time
	PaymentReference   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
