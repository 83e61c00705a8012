package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeNumber: "EMP001",
		FirstName:      "Wanjiku",
		LastName:       "Kamau",
		Email:          "wanjiku.kamau@example.co.ke",
		NationalID:     "12345678",
		KRAPin:         "A001234567B",
		NSSFNumber:     "NSSF123456",
		SHANumber:      "SHA654321",
		DateHired:      "2023-06-01",
		BasicSalary:    decimal.NewFromInt(30000),
		PayFrequency:   "MONTHLY",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCreateRequest().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
		field  string
	}{
		{"missing employee number", func(r *CreateEmployeeRequest) { r.EmployeeNumber = "" }, "employee_number"},
		{"missing first name", func(r *CreateEmployeeRequest) { r.FirstName = "" }, "first_name"},
		{"bad national ID", func(r *CreateEmployeeRequest) { r.NationalID = "1234" }, "national_id"},
		{"bad KRA PIN", func(r *CreateEmployeeRequest) { r.KRAPin = "X123" }, "kra_pin"},
		{"bad hire date", func(r *CreateEmployeeRequest) { r.DateHired = "01/06/2023" }, "date_hired"},
		{"bad pay frequency", func(r *CreateEmployeeRequest) { r.PayFrequency = "HOURLY" }, "pay_frequency"},
		{"zero salary", func(r *CreateEmployeeRequest) { r.BasicSalary = decimal.Zero }, "basic_salary"},
		{"negative pension", func(r *CreateEmployeeRequest) { r.PensionContribution = decimal.NewFromInt(-1) }, "pension_contribution"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)
			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateEmployeeRequest{}.Validate(), "all-nil update is a no-op, not an error")

	bad := "HOURLY"
	err := UpdateEmployeeRequest{PayFrequency: &bad}.Validate()
	require.Error(t, err)

	negative := decimal.NewFromInt(-500)
	err = UpdateEmployeeRequest{InsuranceReliefAmount: &negative}.Validate()
	require.Error(t, err)
}

func TestAllowanceRequestValidate(t *testing.T) {
	valid := AllowanceRequest{
		Category:      "HOUSE",
		Amount:        decimal.NewFromInt(10000),
		EffectiveDate: "2024-01-01",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Category = "FUEL"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Amount = decimal.Zero
	assert.Error(t, bad.Validate())

	badEnd := "soon"
	bad = valid
	bad.EndDate = &badEnd
	assert.Error(t, bad.Validate())
}

func TestDeductionRequestValidate(t *testing.T) {
	valid := DeductionRequest{
		Category:      "SACCO",
		Amount:        decimal.NewFromInt(2000),
		EffectiveDate: "2024-01-01",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Category = "TITHE"
	assert.Error(t, bad.Validate())
}

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Wanjiku", LastName: "Kamau"}
	assert.Equal(t, "Wanjiku Kamau", e.FullName())

	e.MiddleName = "Njeri"
	assert.Equal(t, "Wanjiku Njeri Kamau", e.FullName())
}
