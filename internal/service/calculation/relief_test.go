package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

func TestCalculateReliefsPersonalAlwaysApplies(t *testing.T) {
	rc := rates2024(t)
	in := Input{Employee: employee.Employee{}}

	r := calculateReliefs(in, dec(t, "50000"), rc)

	assert.True(t, r.Personal.Equal(dec(t, "2400")))
	assert.True(t, r.Insurance.IsZero())
	assert.True(t, r.Mortgage.IsZero())
	assert.True(t, r.Disability.IsZero())
	assert.True(t, r.Pension.IsZero())
}

func TestCalculateReliefsInsuranceCapped(t *testing.T) {
	rc := rates2024(t)
	in := Input{Employee: employee.Employee{
		InsuranceReliefAmount: dec(t, "6000"),
	}}

	r := calculateReliefs(in, dec(t, "80000"), rc)

	assert.True(t, r.Insurance.Equal(dec(t, "5000")), "declared 6000 capped at 5000, got %s", r.Insurance)
}

func TestCalculateReliefsMortgageCapped(t *testing.T) {
	rc := rates2024(t)
	in := Input{Employee: employee.Employee{
		MortgageInterest: dec(t, "40000"),
	}}

	r := calculateReliefs(in, dec(t, "200000"), rc)

	assert.True(t, r.Mortgage.Equal(dec(t, "25000")))
}

func TestCalculateReliefsDisability(t *testing.T) {
	rc := rates2024(t)
	in := Input{Employee: employee.Employee{
		HasDisabilityExemption: true,
	}}

	r := calculateReliefs(in, dec(t, "60000"), rc)

	assert.True(t, r.Disability.Equal(dec(t, "3600")), "150%% of personal relief, got %s", r.Disability)
}

func TestPensionReliefMinOfThree(t *testing.T) {
	rc := rates2024(t)

	cases := []struct {
		name     string
		declared string
		gross    string
		want     string
	}{
		{"undeclared", "0", "100000", "0"},
		{"declared under both caps", "8000", "100000", "8000.00"},
		{"capped by statutory limit", "30000", "200000", "20000.00"},
		{"capped by percent of gross", "15000", "50000", "10000.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pensionRelief(dec(t, c.declared), dec(t, c.gross), rc)
			assert.True(t, got.Equal(dec(t, c.want)), "got %s, want %s", got.StringFixed(2), c.want)
		})
	}
}

func TestReliefsTotalCreditsExcludesPension(t *testing.T) {
	r := Reliefs{
		Personal:   decimal.NewFromInt(2400),
		Insurance:  decimal.NewFromInt(5000),
		Mortgage:   decimal.NewFromInt(1000),
		Disability: decimal.NewFromInt(3600),
		Pension:    decimal.NewFromInt(20000),
	}

	assert.True(t, r.TotalCredits().Equal(decimal.NewFromInt(12000)))
}
