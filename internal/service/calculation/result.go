package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

// tolerance for the post-calculation re-derivation check.
var tolerance = decimal.New(1, -2)

// Result is the fully itemized outcome of one employee's calculation.
// Immutable once returned; the caller owns it.
type Result struct {
	EmployeeID string

	Gross GrossPay

	NSSFPensionablePay decimal.Decimal
	NSSFEmployee       decimal.Decimal
	NSSFEmployer       decimal.Decimal
	NSSFTier           string
	SHIFContribution   decimal.Decimal
	AHLEmployee        decimal.Decimal
	AHLEmployer        decimal.Decimal

	// TaxableIncome keeps the raw value, which may be negative; tax itself is
	// computed on the zero-clamped value.
	TaxableIncome decimal.Decimal
	GrossTax      decimal.Decimal
	Reliefs       Reliefs
	PAYETax       decimal.Decimal

	Voluntary VoluntaryDeductions

	TotalStatutory  decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	Details  AuditPayload
	Warnings []string
}

// AuditPayload records the rate tables and step amounts behind a result so it
// stays reproducible after the tables change.
type AuditPayload struct {
	CalculatedAt time.Time         `json:"calculated_at"`
	RatesAsOf    string            `json:"rates_as_of"`
	RateTableIDs map[string]string `json:"rate_table_ids"`
	Steps        []AuditStep       `json:"steps"`
	TaxBandLines []AuditBandLine   `json:"tax_band_lines,omitempty"`
}

type AuditStep struct {
	Step   int    `json:"step"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type AuditBandLine struct {
	Band          string `json:"band"`
	RatePercent   string `json:"rate_percent"`
	TaxableAmount string `json:"taxable_amount"`
	Tax           string `json:"tax"`
}

func buildAudit(rc *RateContext, r *Result, bandLines []TaxBandLine) AuditPayload {
	ids := make(map[string]string, len(rc.Sources))
	for category, id := range rc.Sources {
		ids[string(category)] = id
	}

	payload := AuditPayload{
		CalculatedAt: time.Now().UTC(),
		RatesAsOf:    rc.AsOf.Format("2006-01-02"),
		RateTableIDs: ids,
		Steps: []AuditStep{
			{Step: 1, Name: "gross_pay", Amount: r.Gross.Total.StringFixed(2)},
			{Step: 2, Name: "nssf_employee", Amount: r.NSSFEmployee.StringFixed(2)},
			{Step: 3, Name: "pension_relief", Amount: r.Reliefs.Pension.StringFixed(2)},
			{Step: 4, Name: "taxable_income", Amount: r.TaxableIncome.StringFixed(2)},
			{Step: 5, Name: "paye_tax", Amount: r.PAYETax.StringFixed(2)},
			{Step: 6, Name: "levies", Amount: r.SHIFContribution.Add(r.AHLEmployee).StringFixed(2)},
			{Step: 7, Name: "voluntary_deductions", Amount: r.Voluntary.Total.StringFixed(2)},
			{Step: 8, Name: "net_pay", Amount: r.NetPay.StringFixed(2)},
		},
	}

	for _, line := range bandLines {
		label := line.Band.MinAmount.StringFixed(2) + "+"
		if line.Band.MaxAmount != nil {
			label = fmt.Sprintf("%s-%s", line.Band.MinAmount.StringFixed(2), line.Band.MaxAmount.StringFixed(2))
		}
		payload.TaxBandLines = append(payload.TaxBandLines, AuditBandLine{
			Band:          label,
			RatePercent:   line.Band.RatePercent.String(),
			TaxableAmount: line.TaxableAmount.StringFixed(2),
			Tax:           line.Tax.StringFixed(2),
		})
	}

	return payload
}

// validate re-derives the aggregate fields from the itemized ones and records
// any drift beyond 0.01 as a warning. The result is still returned.
func (r *Result) validate() {
	check := func(name string, got, want decimal.Decimal) {
		if got.Sub(want).Abs().GreaterThan(tolerance) {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("%s mismatch: itemized %s vs aggregate %s", name, want.StringFixed(2), got.StringFixed(2)))
		}
	}

	gross := r.Gross.BasicSalary.
		Add(r.Gross.TotalAllowances).
		Add(r.Gross.OvertimePay).
		Add(r.Gross.BonusAmount).
		Add(r.Gross.CommissionPay)
	check("gross_pay", r.Gross.Total, gross)

	taxable := r.Gross.Total.Sub(r.NSSFEmployee).Sub(r.Reliefs.Pension)
	check("taxable_income", r.TaxableIncome, taxable)

	statutory := r.PAYETax.Add(r.NSSFEmployee).Add(r.SHIFContribution).Add(r.AHLEmployee)
	check("total_statutory", r.TotalStatutory, statutory)

	check("total_deductions", r.TotalDeductions, statutory.Add(r.Voluntary.Total))
	check("net_pay", r.NetPay, r.Gross.Total.Sub(r.TotalDeductions))
}

// RateTableID returns the audit-recorded table ID for a category.
func (p AuditPayload) RateTableID(category ratetable.Category) string {
	return p.RateTableIDs[string(category)]
}
