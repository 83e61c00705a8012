package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

var percent = decimal.NewFromInt(100)

// Contribution holds the employee and employer shares of the tiered
// social-security contribution.
type Contribution struct {
	Tier     string
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// calculateContribution walks the tiers in order and applies the first one
// whose range contains pensionable pay. Pay above every bounded tier is a
// configuration gap, not a zero contribution.
func calculateContribution(pensionablePay decimal.Decimal, schedule ratetable.ContributionSchedule) (Contribution, error) {
	if pensionablePay.LessThanOrEqual(decimal.Zero) {
		return Contribution{}, nil
	}

	for _, tier := range schedule.Tiers {
		if pensionablePay.LessThan(tier.MinSalary) {
			continue
		}
		if tier.MaxSalary != nil && pensionablePay.GreaterThan(*tier.MaxSalary) {
			continue
		}

		base := pensionablePay
		if tier.MaxSalary != nil && base.GreaterThan(*tier.MaxSalary) {
			base = *tier.MaxSalary
		}

		return Contribution{
			Tier:     tier.TierName,
			Employee: shareFor(base, schedule.EmployeeRatePercent, tier.MaxContribution),
			Employer: shareFor(base, schedule.EmployerRatePercent, tier.MaxContribution),
		}, nil
	}

	return Contribution{}, &ConfigurationError{
		Category: ratetable.CategoryNSSFRates,
		Detail:   "pensionable pay " + pensionablePay.StringFixed(2) + " exceeds every contribution tier",
	}
}

func shareFor(base, ratePercent, maxContribution decimal.Decimal) decimal.Decimal {
	raw := base.Mul(ratePercent).Div(percent)
	if raw.GreaterThan(maxContribution) {
		raw = maxContribution
	}
	return round2(raw)
}
