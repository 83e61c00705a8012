package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

func TestStatutoryDefaults2024CoverEveryCategory(t *testing.T) {
	tables := StatutoryDefaults2024()
	require.Len(t, tables, len(ratetable.Categories))

	seen := make(map[ratetable.Category]bool, len(tables))
	for _, table := range tables {
		assert.False(t, seen[table.Category], "duplicate table for %s", table.Category)
		seen[table.Category] = true

		assert.True(t, table.IsActive)
		assert.True(t, table.EffectiveDate.Equal(EffectiveDate2024))
		assert.NoError(t, table.Validate(), "default %s table must pass its own validation", table.Category)
	}
	for _, category := range ratetable.Categories {
		assert.True(t, seen[category], "missing default table for %s", category)
	}
}

func TestStatutoryDefaults2024KnownFigures(t *testing.T) {
	byCategory := make(map[ratetable.Category]ratetable.RateTable)
	for _, table := range StatutoryDefaults2024() {
		byCategory[table.Category] = table
	}

	bands := byCategory[ratetable.CategoryPAYETaxBands].TaxBands
	require.Len(t, bands, 5)
	assert.Equal(t, "10", bands[0].RatePercent.String())
	assert.Equal(t, "24000", bands[0].MaxAmount.String())
	assert.Equal(t, "35", bands[4].RatePercent.String())
	assert.Nil(t, bands[4].MaxAmount)

	relief := byCategory[ratetable.CategoryPersonalRelief].Relief
	require.NotNil(t, relief)
	assert.Equal(t, "2400", relief.MonthlyAmount.String())

	nssf := byCategory[ratetable.CategoryNSSFRates].Contribution
	require.NotNil(t, nssf)
	assert.Equal(t, "6", nssf.EmployeeRatePercent.String())
	require.Len(t, nssf.Tiers, 2)
	assert.Equal(t, "420", nssf.Tiers[0].MaxContribution.String())
	assert.Equal(t, "2160", nssf.Tiers[1].MaxContribution.String())

	assert.Equal(t, "2.75", byCategory[ratetable.CategorySHIFRates].Levy.RatePercent.String())
	assert.Equal(t, "1.5", byCategory[ratetable.CategoryAHLRates].Levy.RatePercent.String())

	assert.Equal(t, "5000", byCategory[ratetable.CategoryInsuranceRelief].Cap.MonthlyLimit.String())
	pension := byCategory[ratetable.CategoryPensionRelief].Cap
	assert.Equal(t, "20000", pension.MonthlyLimit.String())
	require.NotNil(t, pension.PercentOfGross)
	assert.Equal(t, "20", pension.PercentOfGross.String())
	assert.Equal(t, "25000", byCategory[ratetable.CategoryMortgageRelief].Cap.MonthlyLimit.String())
}
