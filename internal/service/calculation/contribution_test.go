package calculation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

func contributionSchedule2024(t *testing.T) ratetable.ContributionSchedule {
	t.Helper()
	return ratetable.ContributionSchedule{
		EmployeeRatePercent: dec(t, "6"),
		EmployerRatePercent: dec(t, "6"),
		Tiers: []ratetable.ContributionTier{
			{TierName: "TIER_I", MinSalary: dec(t, "0"), MaxSalary: decPtr(t, "7000"), MaxContribution: dec(t, "420")},
			{TierName: "TIER_II", MinSalary: dec(t, "7001"), MaxSalary: decPtr(t, "36000"), MaxContribution: dec(t, "2160")},
		},
	}
}

func TestCalculateContribution(t *testing.T) {
	schedule := contributionSchedule2024(t)

	cases := []struct {
		name string
		pay  string
		tier string
		want string
	}{
		{"zero pay", "0", "", "0"},
		{"negative pay", "-100", "", "0"},
		{"inside first tier", "5000", "TIER_I", "300.00"},
		{"first tier cap boundary", "7000", "TIER_I", "420.00"},
		{"inside second tier", "20000", "TIER_II", "1200.00"},
		{"second tier cap boundary", "36000", "TIER_II", "2160.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculateContribution(dec(t, c.pay), schedule)
			require.NoError(t, err)
			assert.Equal(t, c.tier, got.Tier)
			assert.True(t, got.Employee.Equal(dec(t, c.want)),
				"employee share on %s = %s, want %s", c.pay, got.Employee.StringFixed(2), c.want)
			assert.True(t, got.Employer.Equal(got.Employee), "symmetric rates must give equal shares")
		})
	}
}

func TestCalculateContributionAsymmetricRates(t *testing.T) {
	schedule := contributionSchedule2024(t)
	schedule.EmployerRatePercent = dec(t, "12")

	got, err := calculateContribution(dec(t, "5000"), schedule)
	require.NoError(t, err)
	assert.True(t, got.Employee.Equal(dec(t, "300")))
	assert.True(t, got.Employer.Equal(dec(t, "420")), "employer share must hit the tier cap, got %s", got.Employer)
}

func TestCalculateContributionAboveAllTiers(t *testing.T) {
	schedule := contributionSchedule2024(t)

	_, err := calculateContribution(dec(t, "50000"), schedule)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ratetable.CategoryNSSFRates, cfgErr.Category)
}

func TestCalculateContributionUnboundedTopTier(t *testing.T) {
	schedule := contributionSchedule2024(t)
	schedule.Tiers[1].MaxSalary = nil

	got, err := calculateContribution(dec(t, "250000"), schedule)
	require.NoError(t, err)
	assert.Equal(t, "TIER_II", got.Tier)
	assert.True(t, got.Employee.Equal(dec(t, "2160")), "contribution stays at the tier cap, got %s", got.Employee)
}
