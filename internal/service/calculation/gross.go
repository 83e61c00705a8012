package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

// GrossPay is the itemized gross side of a payslip. Every component is
// rounded before it enters the total.
type GrossPay struct {
	BasicSalary decimal.Decimal

	HouseAllowance     decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	TotalAllowances    decimal.Decimal

	OvertimeHours decimal.Decimal
	OvertimePay   decimal.Decimal
	BonusAmount   decimal.Decimal
	CommissionPay decimal.Decimal

	Total decimal.Decimal
}

// assembleGross builds gross pay from the monthly-equivalent basic salary,
// the allowances active in the period, and the period's variable earnings.
func assembleGross(in Input) GrossPay {
	g := GrossPay{
		BasicSalary: round2(in.Employee.MonthlyBasicSalary()),
	}

	for _, a := range in.Allowances {
		if !a.AppliesTo(in.PeriodStart, in.PeriodEnd) {
			continue
		}
		amount := round2(a.Amount)
		switch a.Category {
		case employee.AllowanceHouse:
			g.HouseAllowance = g.HouseAllowance.Add(amount)
		case employee.AllowanceTransport:
			g.TransportAllowance = g.TransportAllowance.Add(amount)
		case employee.AllowanceMedical:
			g.MedicalAllowance = g.MedicalAllowance.Add(amount)
		default:
			g.OtherAllowances = g.OtherAllowances.Add(amount)
		}
	}
	g.TotalAllowances = round2(g.HouseAllowance.Add(g.TransportAllowance).Add(g.MedicalAllowance).Add(g.OtherAllowances))

	if in.Variable != nil {
		g.OvertimeHours = round2(in.Variable.OvertimeHours)
		g.OvertimePay = round2(in.Variable.OvertimePay())
		g.BonusAmount = round2(in.Variable.BonusAmount)
		g.CommissionPay = round2(in.Variable.CommissionAmount)
	}

	g.Total = round2(g.BasicSalary.
		Add(g.TotalAllowances).
		Add(g.OvertimePay).
		Add(g.BonusAmount).
		Add(g.CommissionPay))
	return g
}
