package calculation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

// ErrConfigurationMissing marks calculation failures caused by absent or
// unusable statutory configuration rather than bad employee data.
var ErrConfigurationMissing = errors.New("statutory configuration missing")

type ConfigurationError struct {
	Category ratetable.Category
	Detail   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("statutory configuration missing for %s: %s", e.Category, e.Detail)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfigurationMissing
}

// RateContext holds every statutory value the engine needs for one
// calculation date. It is resolved once per run and shared read-only across
// all employees in the batch.
type RateContext struct {
	AsOf time.Time

	TaxBands       []ratetable.TaxBand
	PersonalRelief decimal.Decimal
	Contribution   ratetable.ContributionSchedule

	SHIFRatePercent decimal.Decimal
	AHLRatePercent  decimal.Decimal

	InsuranceCap      decimal.Decimal
	PensionCapAmount  decimal.Decimal
	PensionCapPercent decimal.Decimal
	MortgageCap       decimal.Decimal

	// Rate table IDs by category, recorded into the audit payload.
	Sources map[ratetable.Category]string
}

// ResolveRateContext loads the effective rate table for every category at
// asOf. A missing or duplicated table for any category fails the whole
// resolution; the engine never falls back to built-in values.
func ResolveRateContext(ctx context.Context, repo ratetable.RateTableRepository, asOf time.Time) (*RateContext, error) {
	rc := &RateContext{
		AsOf:    asOf,
		Sources: make(map[ratetable.Category]string, len(ratetable.Categories)),
	}

	for _, category := range ratetable.Categories {
		table, err := repo.ResolveCurrent(ctx, category, asOf)
		if err != nil {
			if errors.Is(err, ratetable.ErrRateTableNotFound) {
				return nil, &ConfigurationError{Category: category, Detail: "no effective rate table for " + asOf.Format("2006-01-02")}
			}
			if errors.Is(err, ratetable.ErrRateTableConflict) {
				return nil, &ConfigurationError{Category: category, Detail: "multiple effective rate tables for " + asOf.Format("2006-01-02")}
			}
			return nil, fmt.Errorf("resolving %s rate table: %w", category, err)
		}
		rc.Sources[category] = table.ID

		switch category {
		case ratetable.CategoryPAYETaxBands:
			rc.TaxBands = table.TaxBands
		case ratetable.CategoryPersonalRelief:
			rc.PersonalRelief = table.Relief.MonthlyAmount
		case ratetable.CategoryNSSFRates:
			rc.Contribution = *table.Contribution
		case ratetable.CategorySHIFRates:
			rc.SHIFRatePercent = table.Levy.RatePercent
		case ratetable.CategoryAHLRates:
			rc.AHLRatePercent = table.Levy.RatePercent
		case ratetable.CategoryInsuranceRelief:
			rc.InsuranceCap = table.Cap.MonthlyLimit
		case ratetable.CategoryPensionRelief:
			rc.PensionCapAmount = table.Cap.MonthlyLimit
			if table.Cap.PercentOfGross != nil {
				rc.PensionCapPercent = *table.Cap.PercentOfGross
			}
		case ratetable.CategoryMortgageRelief:
			rc.MortgageCap = table.Cap.MonthlyLimit
		}
	}

	return rc, nil
}
