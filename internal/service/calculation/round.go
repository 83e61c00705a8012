package calculation

import "github.com/shopspring/decimal"

// round2 rounds to 2 decimal places, half away from zero. Applied to every
// monetary amount at the point it is first produced.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
