package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PayEngine runs the statutory payroll calculation. It is pure and safe for
// concurrent use: all statutory configuration is frozen in the RateContext.
type PayEngine struct {
	rates *RateContext
}

func NewPayEngine(rates *RateContext) *PayEngine {
	return &PayEngine{rates: rates}
}

// EmployeeError reports one employee's failure inside a batch.
type EmployeeError struct {
	EmployeeID     string
	EmployeeNumber string
	Err            error
}

func (e EmployeeError) Error() string {
	return fmt.Sprintf("employee %s: %v", e.EmployeeNumber, e.Err)
}

func (e EmployeeError) Unwrap() error {
	return e.Err
}

// CalculateEmployee runs the fixed calculation sequence for one employee.
// The step order is load-bearing: the social-security contribution and
// pension relief must come off gross pay before tax, and the percentage
// levies apply to gross pay after tax.
func (e *PayEngine) CalculateEmployee(in Input) (*Result, error) {
	r := &Result{EmployeeID: in.Employee.ID}

	// 1. Gross pay
	r.Gross = assembleGross(in)

	// 2. Tiered social-security contribution on gross pay
	r.NSSFPensionablePay = r.Gross.Total
	contribution, err := calculateContribution(r.Gross.Total, e.rates.Contribution)
	if err != nil {
		return nil, err
	}
	r.NSSFEmployee = contribution.Employee
	r.NSSFEmployer = contribution.Employer
	r.NSSFTier = contribution.Tier

	// 3. Reliefs, pension relief from the declared contribution
	r.Reliefs = calculateReliefs(in, r.Gross.Total, e.rates)

	// 4. Taxable income, raw value retained even when negative
	r.TaxableIncome = round2(r.Gross.Total.Sub(r.NSSFEmployee).Sub(r.Reliefs.Pension))

	// 5. Progressive tax less relief credits, floored at zero. Non-positive
	// taxable income zeroes the itemized credits along with the tax; pension
	// relief stays, it already reduced taxable income.
	var bandLines []TaxBandLine
	if r.TaxableIncome.IsPositive() {
		r.GrossTax, bandLines = progressiveTax(r.TaxableIncome, e.rates.TaxBands)
		tax := r.GrossTax.Sub(r.Reliefs.TotalCredits())
		if tax.IsNegative() {
			tax = decimal.Zero
		}
		r.PAYETax = round2(tax)
	} else {
		r.Reliefs.Personal = decimal.Zero
		r.Reliefs.Insurance = decimal.Zero
		r.Reliefs.Mortgage = decimal.Zero
		r.Reliefs.Disability = decimal.Zero
		r.GrossTax = decimal.Zero
		r.PAYETax = decimal.Zero
	}

	// 6. Post-tax percentage levies on gross pay
	r.SHIFContribution = round2(r.Gross.Total.Mul(e.rates.SHIFRatePercent).Div(percent))
	r.AHLEmployee = round2(r.Gross.Total.Mul(e.rates.AHLRatePercent).Div(percent))
	r.AHLEmployer = r.AHLEmployee

	// 7. Voluntary deductions
	r.Voluntary = collectVoluntary(in)

	// 8. Totals
	r.TotalStatutory = round2(r.PAYETax.Add(r.NSSFEmployee).Add(r.SHIFContribution).Add(r.AHLEmployee))
	r.TotalDeductions = round2(r.TotalStatutory.Add(r.Voluntary.Total))
	r.NetPay = round2(r.Gross.Total.Sub(r.TotalDeductions))

	// 9. Audit payload and re-derivation check
	r.Details = buildAudit(e.rates, r, bandLines)
	r.validate()

	return r, nil
}

// CalculateBatch calculates each input independently. One employee's failure
// is recorded and does not stop the rest.
func (e *PayEngine) CalculateBatch(inputs []Input) ([]*Result, []EmployeeError) {
	results := make([]*Result, 0, len(inputs))
	var errs []EmployeeError

	for _, in := range inputs {
		result, err := e.CalculateEmployee(in)
		if err != nil {
			errs = append(errs, EmployeeError{
				EmployeeID:     in.Employee.ID,
				EmployeeNumber: in.Employee.EmployeeNumber,
				Err:            err,
			})
			continue
		}
		results = append(results, result)
	}

	return results, errs
}
