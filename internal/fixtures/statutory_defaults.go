// Package fixtures carries the published Kenyan statutory rate tables used to
// seed a fresh deployment. Figures follow the Finance Act 2023 schedules in
// force from 1 July 2023 and the NSSF Act 2013 year-two limits (February 2024).
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("fixtures: bad decimal literal %q: %v", s, err))
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// EffectiveDate2024 is the effective date stamped on every default table.
var EffectiveDate2024 = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

// StatutoryDefaults2024 returns one table per category, covering everything
// the engine needs to price a payslip.
func StatutoryDefaults2024() []ratetable.RateTable {
	return []ratetable.RateTable{
		{
			Category:      ratetable.CategoryPAYETaxBands,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "PAYE monthly bands, Finance Act 2023",
			TaxBands: []ratetable.TaxBand{
				{MinAmount: d("0"), MaxAmount: dp("24000"), RatePercent: d("10"), Description: "First 24,000"},
				{MinAmount: d("24000.01"), MaxAmount: dp("32333"), RatePercent: d("25"), Description: "Next 8,333"},
				{MinAmount: d("32333.01"), MaxAmount: dp("500000"), RatePercent: d("30"), Description: "Next 467,667"},
				{MinAmount: d("500000.01"), MaxAmount: dp("800000"), RatePercent: d("32.5"), Description: "Next 300,000"},
				{MinAmount: d("800000.01"), MaxAmount: nil, RatePercent: d("35"), Description: "Above 800,000"},
			},
		},
		{
			Category:      ratetable.CategoryPersonalRelief,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Monthly personal relief",
			Relief:        &ratetable.FlatRelief{MonthlyAmount: d("2400")},
		},
		{
			Category:      ratetable.CategoryNSSFRates,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "NSSF Act 2013 year-two limits",
			Contribution: &ratetable.ContributionSchedule{
				EmployeeRatePercent: d("6"),
				EmployerRatePercent: d("6"),
				Tiers: []ratetable.ContributionTier{
					{TierName: "TIER_I", MinSalary: d("0"), MaxSalary: dp("7000"), MaxContribution: d("420"), Description: "Up to lower earnings limit"},
					{TierName: "TIER_II", MinSalary: d("7001"), MaxSalary: dp("36000"), MaxContribution: d("2160"), Description: "Lower to upper earnings limit"},
				},
			},
		},
		{
			Category:      ratetable.CategorySHIFRates,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Social Health Insurance Fund levy",
			Levy:          &ratetable.LevyRate{RatePercent: d("2.75")},
		},
		{
			Category:      ratetable.CategoryAHLRates,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Affordable Housing Levy, employee share",
			Levy:          &ratetable.LevyRate{RatePercent: d("1.5")},
		},
		{
			Category:      ratetable.CategoryInsuranceRelief,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Insurance relief cap, s.31 ITA",
			Cap:           &ratetable.ReliefCap{MonthlyLimit: d("5000")},
		},
		{
			Category:      ratetable.CategoryPensionRelief,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Registered pension scheme deduction cap",
			Cap:           &ratetable.ReliefCap{MonthlyLimit: d("20000"), PercentOfGross: dp("20")},
		},
		{
			Category:      ratetable.CategoryMortgageRelief,
			EffectiveDate: EffectiveDate2024,
			IsActive:      true,
			Notes:         "Owner-occupier mortgage interest cap",
			Cap:           &ratetable.ReliefCap{MonthlyLimit: d("25000")},
		},
	}
}

// SeedStatutoryDefaults writes the 2024 defaults for every category that has
// no table covering the effective date yet. Existing tables are left alone, so
// the seeder is safe to run on every startup.
func SeedStatutoryDefaults(ctx context.Context, repo ratetable.RateTableRepository, createdBy string) error {
	for _, table := range StatutoryDefaults2024() {
		_, err := repo.ResolveCurrent(ctx, table.Category, table.EffectiveDate)
		if err == nil {
			continue
		}
		if !errors.Is(err, ratetable.ErrRateTableNotFound) {
			return fmt.Errorf("failed to check existing %s table: %w", table.Category, err)
		}

		table.CreatedBy = createdBy
		if _, err := repo.Create(ctx, table); err != nil {
			return fmt.Errorf("failed to seed %s table: %w", table.Category, err)
		}
	}
	return nil
}
