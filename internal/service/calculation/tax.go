package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

var bandStep = decimal.New(1, -2)

// TaxBandLine records how much of the income fell into one band.
type TaxBandLine struct {
	Band          ratetable.TaxBand
	TaxableAmount decimal.Decimal
	Tax           decimal.Decimal
}

// progressiveTax walks the ordered bands and accumulates tax per band until
// the income is consumed. Zero or negative income is zero tax.
func progressiveTax(taxableIncome decimal.Decimal, bands []ratetable.TaxBand) (decimal.Decimal, []TaxBandLine) {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	var (
		total     decimal.Decimal
		lines     []TaxBandLine
		remaining = taxableIncome
	)
	for _, band := range bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		width := remaining
		if band.MaxAmount != nil {
			width = band.MaxAmount.Sub(band.MinAmount).Add(bandStep)
		}
		inBand := remaining
		if inBand.GreaterThan(width) {
			inBand = width
		}

		tax := round2(inBand.Mul(band.RatePercent).Div(percent))
		total = total.Add(tax)
		lines = append(lines, TaxBandLine{Band: band, TaxableAmount: inBand, Tax: tax})
		remaining = remaining.Sub(inBand)
	}

	return round2(total), lines
}
