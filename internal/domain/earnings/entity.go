package earnings

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyEarning records the variable earnings of one employee for one pay
// period: overtime, bonus and commission. At most one record exists per
// employee and period.
type MonthlyEarning struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	PeriodStart    time.Time
	PeriodEnd      time.Time

	OvertimeHours    decimal.Decimal
	OvertimeRate     decimal.Decimal
	BonusAmount      decimal.Decimal
	CommissionAmount decimal.Decimal

	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OvertimePay is hours times the hourly rate, unrounded.
func (m MonthlyEarning) OvertimePay() decimal.Decimal {
	return m.OvertimeHours.Mul(m.OvertimeRate)
}

// OneOffDeduction is a single-use deduction consumed by the first batch that
// processes it. ProcessedInBatch holds the consuming batch ID once applied.
type OneOffDeduction struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	Category       string
	Description    string
	Amount         decimal.Decimal
	DeductionDate  time.Time

	ProcessedInBatch *string
	ProcessedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d OneOffDeduction) IsProcessed() bool {
	return d.ProcessedInBatch != nil
}
