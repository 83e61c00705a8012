package ratetable

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category identifies one statutory rate table kind. Exactly one table per
// category may be effective on any given date.
type Category string

const (
	CategoryPAYETaxBands    Category = "PAYE_TAX_BANDS"
	CategoryPersonalRelief  Category = "PERSONAL_RELIEF"
	CategoryNSSFRates       Category = "NSSF_RATES"
	CategorySHIFRates       Category = "SHIF_RATES"
	CategoryAHLRates        Category = "AHL_RATES"
	CategoryInsuranceRelief Category = "INSURANCE_RELIEF"
	CategoryPensionRelief   Category = "PENSION_RELIEF"
	CategoryMortgageRelief  Category = "MORTGAGE_RELIEF"
)

// Categories lists every statutory category the engine requires.
var Categories = []Category{
	CategoryPAYETaxBands,
	CategoryPersonalRelief,
	CategoryNSSFRates,
	CategorySHIFRates,
	CategoryAHLRates,
	CategoryInsuranceRelief,
	CategoryPensionRelief,
	CategoryMortgageRelief,
}

// smallestUnit is one cent of a shilling, the granularity of band boundaries.
var smallestUnit = decimal.New(1, -2)

// TaxBand is one slice of the progressive PAYE schedule.
type TaxBand struct {
	MinAmount   decimal.Decimal  `json:"min_amount"`
	MaxAmount   *decimal.Decimal `json:"max_amount"` // nil = open-ended top band
	RatePercent decimal.Decimal  `json:"rate_percent"`
	Description string           `json:"description,omitempty"`
}

// ContributionTier is one salary bracket of the tiered NSSF schedule.
// Pensionable pay falls into exactly one tier.
type ContributionTier struct {
	TierName        string           `json:"tier_name"`
	MinSalary       decimal.Decimal  `json:"min_salary"`
	MaxSalary       *decimal.Decimal `json:"max_salary"` // nil = unbounded
	MaxContribution decimal.Decimal  `json:"max_contribution"`
	Description     string           `json:"description,omitempty"`
}

// ContributionSchedule carries the NSSF employee/employer rates and tiers.
type ContributionSchedule struct {
	EmployeeRatePercent decimal.Decimal    `json:"employee_rate_percent"`
	EmployerRatePercent decimal.Decimal    `json:"employer_rate_percent"`
	Tiers               []ContributionTier `json:"tiers"`
}

// FlatRelief is a flat monthly credit (personal relief).
type FlatRelief struct {
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
}

// LevyRate is a flat-percentage post-tax levy (SHIF, AHL).
type LevyRate struct {
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// ReliefCap bounds an employee-declared relief (insurance, pension, mortgage).
// PercentOfGross additionally caps the relief at a share of gross pay when set
// (pension relief uses 20%).
type ReliefCap struct {
	MonthlyLimit   decimal.Decimal  `json:"monthly_limit"`
	PercentOfGross *decimal.Decimal `json:"percent_of_gross,omitempty"`
}

// RateTable is one dated version of a statutory table. Immutable once created
// except for approval metadata. Exactly one payload field is populated,
// matching Category.
type RateTable struct {
	ID            string
	Category      Category
	EffectiveDate time.Time
	EndDate       *time.Time
	IsActive      bool

	TaxBands     []TaxBand
	Relief       *FlatRelief
	Contribution *ContributionSchedule
	Levy         *LevyRate
	Cap          *ReliefCap

	CreatedBy  string
	ApprovedBy *string
	ApprovedAt *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CoversDate reports whether the table's effective window contains d.
func (t RateTable) CoversDate(d time.Time) bool {
	if d.Before(t.EffectiveDate) {
		return false
	}
	return t.EndDate == nil || !d.After(*t.EndDate)
}
