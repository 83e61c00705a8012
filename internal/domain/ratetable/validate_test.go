package ratetable

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func dp(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v := d(t, s)
	return &v
}

func validBands(t *testing.T) []TaxBand {
	t.Helper()
	return []TaxBand{
		{MinAmount: d(t, "0"), MaxAmount: dp(t, "24000"), RatePercent: d(t, "10")},
		{MinAmount: d(t, "24000.01"), MaxAmount: dp(t, "32333"), RatePercent: d(t, "25")},
		{MinAmount: d(t, "32333.01"), MaxAmount: nil, RatePercent: d(t, "30")},
	}
}

func fieldMessages(t *testing.T, err error) []string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return messages
}

func TestValidateTaxBands(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		table := RateTable{Category: CategoryPAYETaxBands, TaxBands: validBands(t)}
		assert.NoError(t, table.Validate())
	})

	t.Run("empty schedule", func(t *testing.T) {
		table := RateTable{Category: CategoryPAYETaxBands}
		require.Error(t, table.Validate())
	})

	t.Run("first band must start at zero", func(t *testing.T) {
		bands := validBands(t)
		bands[0].MinAmount = d(t, "100")
		table := RateTable{Category: CategoryPAYETaxBands, TaxBands: bands}
		assert.Contains(t, fieldMessages(t, table.Validate()), "first band must start at 0")
	})

	t.Run("gap between bands", func(t *testing.T) {
		bands := validBands(t)
		bands[1].MinAmount = d(t, "24005")
		table := RateTable{Category: CategoryPAYETaxBands, TaxBands: bands}
		assert.Contains(t, fieldMessages(t, table.Validate()), "bands must be contiguous with no gaps or overlaps")
	})

	t.Run("last band must be open-ended", func(t *testing.T) {
		bands := validBands(t)
		bands[2].MaxAmount = dp(t, "100000")
		table := RateTable{Category: CategoryPAYETaxBands, TaxBands: bands}
		assert.Contains(t, fieldMessages(t, table.Validate()), "last band must be open-ended")
	})

	t.Run("rate above 100", func(t *testing.T) {
		bands := validBands(t)
		bands[0].RatePercent = d(t, "105")
		table := RateTable{Category: CategoryPAYETaxBands, TaxBands: bands}
		assert.Contains(t, fieldMessages(t, table.Validate()), "rate_percent must be between 0 and 100")
	})
}

func TestValidateContribution(t *testing.T) {
	schedule := func() *ContributionSchedule {
		return &ContributionSchedule{
			EmployeeRatePercent: d(t, "6"),
			EmployerRatePercent: d(t, "6"),
			Tiers: []ContributionTier{
				{TierName: "TIER_I", MinSalary: d(t, "0"), MaxSalary: dp(t, "7000"), MaxContribution: d(t, "420")},
				{TierName: "TIER_II", MinSalary: d(t, "7001"), MaxSalary: dp(t, "36000"), MaxContribution: d(t, "2160")},
			},
		}
	}

	t.Run("valid schedule", func(t *testing.T) {
		table := RateTable{Category: CategoryNSSFRates, Contribution: schedule()}
		assert.NoError(t, table.Validate())
	})

	t.Run("missing payload", func(t *testing.T) {
		table := RateTable{Category: CategoryNSSFRates}
		require.Error(t, table.Validate())
	})

	t.Run("overlapping tiers", func(t *testing.T) {
		s := schedule()
		s.Tiers[1].MinSalary = d(t, "6000")
		table := RateTable{Category: CategoryNSSFRates, Contribution: s}
		assert.Contains(t, fieldMessages(t, table.Validate()), "tiers must not overlap")
	})

	t.Run("unbounded tier not last", func(t *testing.T) {
		s := schedule()
		s.Tiers[0].MaxSalary = nil
		table := RateTable{Category: CategoryNSSFRates, Contribution: s}
		assert.Contains(t, fieldMessages(t, table.Validate()), "only the last tier may be unbounded")
	})
}

func TestValidateLevy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table := RateTable{Category: CategorySHIFRates, Levy: &LevyRate{RatePercent: d(t, "2.75")}}
		assert.NoError(t, table.Validate())
	})

	t.Run("missing payload", func(t *testing.T) {
		table := RateTable{Category: CategoryAHLRates}
		assert.Error(t, table.Validate())
	})

	t.Run("rate out of range", func(t *testing.T) {
		table := RateTable{Category: CategorySHIFRates, Levy: &LevyRate{RatePercent: d(t, "101")}}
		assert.Error(t, table.Validate())
	})
}

func TestValidateCap(t *testing.T) {
	t.Run("valid with percent", func(t *testing.T) {
		table := RateTable{Category: CategoryPensionRelief, Cap: &ReliefCap{MonthlyLimit: d(t, "20000"), PercentOfGross: dp(t, "20")}}
		assert.NoError(t, table.Validate())
	})

	t.Run("negative limit", func(t *testing.T) {
		table := RateTable{Category: CategoryInsuranceRelief, Cap: &ReliefCap{MonthlyLimit: d(t, "-1")}}
		assert.Error(t, table.Validate())
	})

	t.Run("missing payload", func(t *testing.T) {
		table := RateTable{Category: CategoryMortgageRelief}
		assert.Error(t, table.Validate())
	})
}

func TestValidateUnknownCategory(t *testing.T) {
	table := RateTable{Category: Category("WEALTH_TAX")}
	assert.ErrorIs(t, table.Validate(), ErrInvalidCategory)
}

func TestCoversDate(t *testing.T) {
	effective := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	open := RateTable{EffectiveDate: effective}
	assert.False(t, open.CoversDate(effective.AddDate(0, 0, -1)))
	assert.True(t, open.CoversDate(effective))
	assert.True(t, open.CoversDate(effective.AddDate(5, 0, 0)))

	bounded := RateTable{EffectiveDate: effective, EndDate: &end}
	assert.True(t, bounded.CoversDate(end))
	assert.False(t, bounded.CoversDate(end.AddDate(0, 0, 1)))
}
