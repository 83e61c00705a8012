package ratetable

import (
	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

// Validate checks that the payload matches the category and satisfies the
// structural invariants for that variant. Called at write time; tables are
// never re-validated on read.
func (t *RateTable) Validate() error {
	switch t.Category {
	case CategoryPAYETaxBands:
		return t.validateTaxBands()
	case CategoryPersonalRelief:
		return t.validateFlatRelief()
	case CategoryNSSFRates:
		return t.validateContribution()
	case CategorySHIFRates, CategoryAHLRates:
		return t.validateLevy()
	case CategoryInsuranceRelief, CategoryPensionRelief, CategoryMortgageRelief:
		return t.validateCap()
	default:
		return ErrInvalidCategory
	}
}

func (t *RateTable) validateTaxBands() error {
	var errs validator.ValidationErrors

	if len(t.TaxBands) == 0 {
		errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "at least one band is required"})
		return errs
	}
	if !t.TaxBands[0].MinAmount.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "first band must start at 0"})
	}
	for i, band := range t.TaxBands {
		if !validator.IsValidPercent(band.RatePercent) {
			errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "rate_percent must be between 0 and 100"})
		}
		last := i == len(t.TaxBands)-1
		if last {
			if band.MaxAmount != nil {
				errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "last band must be open-ended"})
			}
			continue
		}
		if band.MaxAmount == nil {
			errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "only the last band may be open-ended"})
			continue
		}
		if band.MaxAmount.LessThanOrEqual(band.MinAmount) {
			errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "max_amount must exceed min_amount"})
		}
		// Bands must be contiguous: next min is exactly one cent above this max.
		next := t.TaxBands[i+1]
		if !next.MinAmount.Equal(band.MaxAmount.Add(smallestUnit)) {
			errs = append(errs, validator.ValidationError{Field: "tax_bands", Message: "bands must be contiguous with no gaps or overlaps"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *RateTable) validateFlatRelief() error {
	var errs validator.ValidationErrors

	if t.Relief == nil {
		errs = append(errs, validator.ValidationError{Field: "relief", Message: "monthly_amount is required"})
	} else if t.Relief.MonthlyAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "relief", Message: "monthly_amount must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *RateTable) validateContribution() error {
	var errs validator.ValidationErrors

	if t.Contribution == nil {
		errs = append(errs, validator.ValidationError{Field: "contribution", Message: "rates and tiers are required"})
		return errs
	}
	if !validator.IsValidPercent(t.Contribution.EmployeeRatePercent) {
		errs = append(errs, validator.ValidationError{Field: "contribution", Message: "employee_rate_percent must be between 0 and 100"})
	}
	if !validator.IsValidPercent(t.Contribution.EmployerRatePercent) {
		errs = append(errs, validator.ValidationError{Field: "contribution", Message: "employer_rate_percent must be between 0 and 100"})
	}
	if len(t.Contribution.Tiers) == 0 {
		errs = append(errs, validator.ValidationError{Field: "contribution", Message: "at least one tier is required"})
		return errs
	}
	for i, tier := range t.Contribution.Tiers {
		if tier.MinSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "contribution", Message: "min_salary must be non-negative"})
		}
		if tier.MaxSalary != nil && tier.MaxSalary.LessThanOrEqual(tier.MinSalary) {
			errs = append(errs, validator.ValidationError{Field: "contribution", Message: "max_salary must exceed min_salary"})
		}
		if tier.MaxContribution.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "contribution", Message: "max_contribution must be non-negative"})
		}
		if i > 0 {
			prev := t.Contribution.Tiers[i-1]
			if prev.MaxSalary == nil {
				errs = append(errs, validator.ValidationError{Field: "contribution", Message: "only the last tier may be unbounded"})
			} else if !tier.MinSalary.GreaterThan(*prev.MaxSalary) {
				errs = append(errs, validator.ValidationError{Field: "contribution", Message: "tiers must not overlap"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *RateTable) validateLevy() error {
	var errs validator.ValidationErrors

	if t.Levy == nil {
		errs = append(errs, validator.ValidationError{Field: "levy", Message: "rate_percent is required"})
	} else if !validator.IsValidPercent(t.Levy.RatePercent) {
		errs = append(errs, validator.ValidationError{Field: "levy", Message: "rate_percent must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *RateTable) validateCap() error {
	var errs validator.ValidationErrors

	if t.Cap == nil {
		errs = append(errs, validator.ValidationError{Field: "cap", Message: "monthly_limit is required"})
		return errs
	}
	if t.Cap.MonthlyLimit.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cap", Message: "monthly_limit must be non-negative"})
	}
	if t.Cap.PercentOfGross != nil && !validator.IsValidPercent(*t.Cap.PercentOfGross) {
		errs = append(errs, validator.ValidationError{Field: "cap", Message: "percent_of_gross must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
