package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v := dec(t, s)
	return &v
}

func taxBands2024(t *testing.T) []ratetable.TaxBand {
	t.Helper()
	return []ratetable.TaxBand{
		{MinAmount: dec(t, "0"), MaxAmount: decPtr(t, "24000"), RatePercent: dec(t, "10")},
		{MinAmount: dec(t, "24000.01"), MaxAmount: decPtr(t, "32333"), RatePercent: dec(t, "25")},
		{MinAmount: dec(t, "32333.01"), MaxAmount: decPtr(t, "500000"), RatePercent: dec(t, "30")},
		{MinAmount: dec(t, "500000.01"), MaxAmount: decPtr(t, "800000"), RatePercent: dec(t, "32.5")},
		{MinAmount: dec(t, "800000.01"), MaxAmount: nil, RatePercent: dec(t, "35")},
	}
}

func TestProgressiveTax(t *testing.T) {
	bands := taxBands2024(t)

	cases := []struct {
		name    string
		income  string
		want    string
		inBands int
	}{
		{"zero income", "0", "0", 0},
		{"negative income", "-5000", "0", 0},
		{"within first band", "20000", "2000.00", 1},
		{"first band boundary", "24000", "2400.00", 1},
		{"spanning two bands", "30000", "3900.00", 2},
		{"second band boundary", "32333", "4483.25", 2},
		{"spanning three bands", "100000", "24783.35", 3},
		{"into the open-ended band", "1000000", "312283.35", 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total, lines := progressiveTax(dec(t, c.income), bands)
			assert.True(t, total.Equal(dec(t, c.want)),
				"tax on %s = %s, want %s", c.income, total.StringFixed(2), c.want)
			assert.Len(t, lines, c.inBands)
		})
	}
}

func TestProgressiveTaxBandLinesSumToTotal(t *testing.T) {
	bands := taxBands2024(t)
	income := dec(t, "650000")

	total, lines := progressiveTax(income, bands)

	var sumTax, sumTaxable decimal.Decimal
	for _, line := range lines {
		sumTax = sumTax.Add(line.Tax)
		sumTaxable = sumTaxable.Add(line.TaxableAmount)
	}
	assert.True(t, sumTax.Equal(total), "band taxes sum to %s, total is %s", sumTax, total)
	assert.True(t, sumTaxable.Equal(income), "band taxable amounts must consume the whole income")
}

func TestProgressiveTaxMonotonic(t *testing.T) {
	bands := taxBands2024(t)

	incomes := []string{"1000", "24000", "24000.01", "32333", "50000", "499999", "500001", "800000", "900000"}
	prev := decimal.Zero
	for _, s := range incomes {
		tax, _ := progressiveTax(dec(t, s), bands)
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax must not decrease as income rises (income %s)", s)
		prev = tax
	}
}
