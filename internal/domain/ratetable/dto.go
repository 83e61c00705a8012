package ratetable

import (
	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

type CreateRateTableRequest struct {
	Category      string  `json:"category"`
	EffectiveDate string  `json:"effective_date"`
	EndDate       *string `json:"end_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`

	TaxBands     []TaxBand             `json:"tax_bands,omitempty"`
	Relief       *FlatRelief           `json:"relief,omitempty"`
	Contribution *ContributionSchedule `json:"contribution,omitempty"`
	Levy         *LevyRate             `json:"levy,omitempty"`
	Cap          *ReliefCap            `json:"cap,omitempty"`
}

func (r *CreateRateTableRequest) Validate() error {
	var errs validator.ValidationErrors

	valid := false
	for _, c := range Categories {
		if Category(r.Category) == c {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "unknown category"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateTableResponse struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	EffectiveDate string  `json:"effective_date"`
	EndDate       *string `json:"end_date,omitempty"`
	IsActive      bool    `json:"is_active"`

	TaxBands     []TaxBand             `json:"tax_bands,omitempty"`
	Relief       *FlatRelief           `json:"relief,omitempty"`
	Contribution *ContributionSchedule `json:"contribution,omitempty"`
	Levy         *LevyRate             `json:"levy,omitempty"`
	Cap          *ReliefCap            `json:"cap,omitempty"`

	CreatedBy  string  `json:"created_by"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}
