package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

// VoluntaryDeductions buckets the employee's non-statutory deductions.
type VoluntaryDeductions struct {
	Sacco   decimal.Decimal
	Loans   decimal.Decimal
	Advance decimal.Decimal
	Welfare decimal.Decimal
	Other   decimal.Decimal

	Total decimal.Decimal
}

// collectVoluntary sums the period's active recurring deductions and any
// one-off deductions, grouped by category.
func collectVoluntary(in Input) VoluntaryDeductions {
	var v VoluntaryDeductions

	add := func(category employee.DeductionCategory, amount decimal.Decimal) {
		amount = round2(amount)
		switch category {
		case employee.DeductionSacco:
			v.Sacco = v.Sacco.Add(amount)
		case employee.DeductionLoan, employee.DeductionHELB:
			v.Loans = v.Loans.Add(amount)
		case employee.DeductionAdvance:
			v.Advance = v.Advance.Add(amount)
		case employee.DeductionWelfare:
			v.Welfare = v.Welfare.Add(amount)
		default:
			v.Other = v.Other.Add(amount)
		}
	}

	for _, d := range in.Recurring {
		if d.AppliesTo(in.PeriodStart, in.PeriodEnd) {
			add(d.Category, d.Amount)
		}
	}
	for _, d := range in.OneOff {
		add(employee.DeductionCategory(d.Category), d.Amount)
	}

	v.Total = round2(v.Sacco.Add(v.Loans).Add(v.Advance).Add(v.Welfare).Add(v.Other))
	return v
}
