package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

// rates2024 mirrors the seeded statutory defaults.
func rates2024(t *testing.T) *RateContext {
	t.Helper()
	sources := make(map[ratetable.Category]string, len(ratetable.Categories))
	for _, category := range ratetable.Categories {
		sources[category] = "tbl-" + string(category)
	}
	return &RateContext{
		AsOf:              time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		TaxBands:          taxBands2024(t),
		PersonalRelief:    dec(t, "2400"),
		Contribution:      contributionSchedule2024(t),
		SHIFRatePercent:   dec(t, "2.75"),
		AHLRatePercent:    dec(t, "1.5"),
		InsuranceCap:      dec(t, "5000"),
		PensionCapAmount:  dec(t, "20000"),
		PensionCapPercent: dec(t, "20"),
		MortgageCap:       dec(t, "25000"),
		Sources:           sources,
	}
}

func monthlyEmployee(t *testing.T, id, number, basic string) employee.Employee {
	t.Helper()
	return employee.Employee{
		ID:             id,
		EmployeeNumber: number,
		BasicSalary:    dec(t, basic),
		PayFrequency:   employee.PayFrequencyMonthly,
		IsActive:       true,
	}
}

func TestCalculateEmployeeFullBreakdown(t *testing.T) {
	engine := NewPayEngine(rates2024(t))

	emp := monthlyEmployee(t, "emp-1", "EMP001", "30000")
	emp.PensionContribution = dec(t, "2000")

	result, err := engine.CalculateEmployee(Input{
		Employee: emp,
		Allowances: []employee.RecurringAllowance{
			{Category: employee.AllowanceHouse, Amount: dec(t, "5000"), IsActive: true, EffectiveDate: periodStart},
		},
		Recurring: []employee.RecurringDeduction{
			{Category: employee.DeductionSacco, Amount: dec(t, "1000"), IsActive: true, EffectiveDate: periodStart},
		},
		OneOff: []earnings.OneOffDeduction{
			{Category: string(employee.DeductionAdvance), Amount: dec(t, "500")},
		},
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)

	assertAmount := func(name string, got decimal.Decimal, want string) {
		t.Helper()
		assert.True(t, got.Equal(dec(t, want)), "%s = %s, want %s", name, got.StringFixed(2), want)
	}

	assertAmount("gross", result.Gross.Total, "35000.00")
	assertAmount("pensionable pay", result.NSSFPensionablePay, "35000.00")
	assertAmount("nssf employee", result.NSSFEmployee, "2100.00")
	assert.Equal(t, "TIER_II", result.NSSFTier)
	assertAmount("pension relief", result.Reliefs.Pension, "2000.00")
	assertAmount("taxable income", result.TaxableIncome, "30900.00")
	assertAmount("gross tax", result.GrossTax, "4125.00")
	assertAmount("paye", result.PAYETax, "1725.00")
	assertAmount("shif", result.SHIFContribution, "962.50")
	assertAmount("ahl employee", result.AHLEmployee, "525.00")
	assertAmount("voluntary total", result.Voluntary.Total, "1500.00")
	assertAmount("total statutory", result.TotalStatutory, "5312.50")
	assertAmount("total deductions", result.TotalDeductions, "6812.50")
	assertAmount("net pay", result.NetPay, "28187.50")

	assert.True(t, result.NetPay.Equal(result.Gross.Total.Sub(result.TotalDeductions)))
	assert.Empty(t, result.Warnings)
}

func TestCalculateEmployeeTaxFlooredAtZero(t *testing.T) {
	engine := NewPayEngine(rates2024(t))

	emp := monthlyEmployee(t, "emp-2", "EMP002", "30000")
	emp.HasDisabilityExemption = true

	result, err := engine.CalculateEmployee(Input{
		Employee:    emp,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)

	assert.True(t, result.GrossTax.Equal(dec(t, "3450.00")), "gross tax %s", result.GrossTax.StringFixed(2))
	assert.True(t, result.Reliefs.TotalCredits().Equal(dec(t, "6000")))
	assert.True(t, result.PAYETax.IsZero(), "credits above gross tax floor PAYE at zero, got %s", result.PAYETax)
	assert.True(t, result.SHIFContribution.IsPositive(), "levies still apply when PAYE is zero")
}

func TestCalculateEmployeeNegativeTaxableIncomeRetained(t *testing.T) {
	rc := rates2024(t)
	rc.PensionCapPercent = decimal.Zero
	engine := NewPayEngine(rc)

	emp := monthlyEmployee(t, "emp-3", "EMP003", "5000")
	emp.PensionContribution = dec(t, "10000")
	emp.InsuranceReliefAmount = dec(t, "3000")
	emp.MortgageInterest = dec(t, "8000")
	emp.HasDisabilityExemption = true

	result, err := engine.CalculateEmployee(Input{
		Employee:    emp,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)

	assert.True(t, result.TaxableIncome.Equal(dec(t, "-5300.00")),
		"raw negative taxable income is kept, got %s", result.TaxableIncome.StringFixed(2))
	assert.True(t, result.GrossTax.IsZero())
	assert.True(t, result.PAYETax.IsZero())

	// No taxable income means no credits on the payslip either.
	assert.True(t, result.Reliefs.Personal.IsZero(), "personal relief, got %s", result.Reliefs.Personal.StringFixed(2))
	assert.True(t, result.Reliefs.Insurance.IsZero(), "insurance relief, got %s", result.Reliefs.Insurance.StringFixed(2))
	assert.True(t, result.Reliefs.Mortgage.IsZero(), "mortgage relief, got %s", result.Reliefs.Mortgage.StringFixed(2))
	assert.True(t, result.Reliefs.Disability.IsZero(), "disability relief, got %s", result.Reliefs.Disability.StringFixed(2))
	assert.True(t, result.Reliefs.Pension.Equal(dec(t, "10000.00")))
	assert.Empty(t, result.Warnings)
}

func TestCalculateEmployeeIdempotent(t *testing.T) {
	engine := NewPayEngine(rates2024(t))
	in := Input{
		Employee:    monthlyEmployee(t, "emp-4", "EMP004", "32000"),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	first, err := engine.CalculateEmployee(in)
	require.NoError(t, err)
	second, err := engine.CalculateEmployee(in)
	require.NoError(t, err)

	assert.True(t, first.Gross.Total.Equal(second.Gross.Total))
	assert.True(t, first.PAYETax.Equal(second.PAYETax))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.NetPay.Equal(second.NetPay))
}

func TestCalculateEmployeeAuditPayload(t *testing.T) {
	rc := rates2024(t)
	engine := NewPayEngine(rc)

	result, err := engine.CalculateEmployee(Input{
		Employee:    monthlyEmployee(t, "emp-5", "EMP005", "30000"),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-31", result.Details.RatesAsOf)
	assert.Len(t, result.Details.Steps, 8)
	assert.Len(t, result.Details.RateTableIDs, len(ratetable.Categories))
	assert.Equal(t, "tbl-PAYE_TAX_BANDS", result.Details.RateTableID(ratetable.CategoryPAYETaxBands))
	assert.NotEmpty(t, result.Details.TaxBandLines)
	assert.False(t, result.Details.CalculatedAt.IsZero())
}

func TestCalculateBatchIsolatesFailures(t *testing.T) {
	engine := NewPayEngine(rates2024(t))

	inputs := []Input{
		{Employee: monthlyEmployee(t, "emp-ok-1", "EMP010", "25000"), PeriodStart: periodStart, PeriodEnd: periodEnd},
		// Above every bounded contribution tier, must fail alone.
		{Employee: monthlyEmployee(t, "emp-bad", "EMP011", "50000"), PeriodStart: periodStart, PeriodEnd: periodEnd},
		{Employee: monthlyEmployee(t, "emp-ok-2", "EMP012", "18000"), PeriodStart: periodStart, PeriodEnd: periodEnd},
	}

	results, errs := engine.CalculateBatch(inputs)

	require.Len(t, results, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, "emp-bad", errs[0].EmployeeID)
	assert.Equal(t, "EMP011", errs[0].EmployeeNumber)
	assert.ErrorIs(t, errs[0], ErrConfigurationMissing)

	ids := []string{results[0].EmployeeID, results[1].EmployeeID}
	assert.Equal(t, []string{"emp-ok-1", "emp-ok-2"}, ids)
}
