package calculation

import (
	"github.com/shopspring/decimal"
)

var disabilityMultiplier = decimal.NewFromFloat(1.5)

// Reliefs carries the tax credits applied against gross progressive tax,
// plus pension relief which reduces taxable income instead.
type Reliefs struct {
	Personal   decimal.Decimal
	Insurance  decimal.Decimal
	Mortgage   decimal.Decimal
	Disability decimal.Decimal
	Pension    decimal.Decimal
}

// TotalCredits is the sum applied against gross tax. Pension relief is not a
// credit; it already reduced taxable income.
func (r Reliefs) TotalCredits() decimal.Decimal {
	return r.Personal.Add(r.Insurance).Add(r.Mortgage).Add(r.Disability)
}

// pensionRelief caps the employee's declared voluntary pension contribution
// at the lower of the statutory monthly limit and a percentage of gross pay.
func pensionRelief(declared, grossPay decimal.Decimal, rc *RateContext) decimal.Decimal {
	if declared.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	cap := rc.PensionCapAmount
	if rc.PensionCapPercent.IsPositive() {
		percentCap := grossPay.Mul(rc.PensionCapPercent).Div(percent)
		if percentCap.LessThan(cap) {
			cap = percentCap
		}
	}
	if declared.GreaterThan(cap) {
		declared = cap
	}
	return round2(declared)
}

// calculateReliefs computes each relief independently from the employee's
// declared amounts and the statutory caps.
func calculateReliefs(in Input, grossPay decimal.Decimal, rc *RateContext) Reliefs {
	r := Reliefs{
		Personal: round2(rc.PersonalRelief),
		Pension:  pensionRelief(in.Employee.PensionContribution, grossPay, rc),
	}

	if in.Employee.InsuranceReliefAmount.IsPositive() {
		r.Insurance = in.Employee.InsuranceReliefAmount
		if r.Insurance.GreaterThan(rc.InsuranceCap) {
			r.Insurance = rc.InsuranceCap
		}
		r.Insurance = round2(r.Insurance)
	}

	if in.Employee.MortgageInterest.IsPositive() {
		r.Mortgage = in.Employee.MortgageInterest
		if r.Mortgage.GreaterThan(rc.MortgageCap) {
			r.Mortgage = rc.MortgageCap
		}
		r.Mortgage = round2(r.Mortgage)
	}

	if in.Employee.HasDisabilityExemption {
		r.Disability = round2(rc.PersonalRelief.Mul(disabilityMultiplier))
	}

	return r
}
