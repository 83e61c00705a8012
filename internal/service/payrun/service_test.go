package payrun

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/service/calculation"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// The snapshot must freeze the full itemized breakdown, not just the
// aggregates: per-category allowances, overtime hours, pensionable pay, and
// every relief amount.
func TestSnapshotFromResultCarriesItemizedBreakdown(t *testing.T) {
	emp := employee.Employee{
		ID:             "emp-1",
		EmployeeNumber: "EMP001",
		FirstName:      "Wanjiku",
		LastName:       "Kamau",
		KRAPin:         "A001234567B",
		NSSFNumber:     "NSSF-001",
		SHANumber:      "SHA-001",
		JobTitle:       "Accountant",
		Department:     "Finance",
		BankName:       "Equity Bank",
		BankBranch:     "Westlands",
		AccountNumber:  "0123456789",
		AccountName:    "Wanjiku Kamau",
	}

	result := &calculation.Result{
		EmployeeID: emp.ID,
		Gross: calculation.GrossPay{
			BasicSalary:        amount(t, "25000.00"),
			HouseAllowance:     amount(t, "5000.00"),
			TransportAllowance: amount(t, "2000.00"),
			MedicalAllowance:   amount(t, "1500.00"),
			OtherAllowances:    amount(t, "500.00"),
			TotalAllowances:    amount(t, "9000.00"),
			OvertimeHours:      amount(t, "4.50"),
			OvertimePay:        amount(t, "1200.00"),
			BonusAmount:        amount(t, "300.00"),
			CommissionPay:      amount(t, "100.00"),
			Total:              amount(t, "35600.00"),
		},
		NSSFPensionablePay: amount(t, "35600.00"),
		NSSFEmployee:       amount(t, "2136.00"),
		NSSFEmployer:       amount(t, "2136.00"),
		SHIFContribution:   amount(t, "979.00"),
		AHLEmployee:        amount(t, "534.00"),
		AHLEmployer:        amount(t, "534.00"),
		TaxableIncome:      amount(t, "32464.00"),
		GrossTax:           amount(t, "4516.00"),
		Reliefs: calculation.Reliefs{
			Personal:   amount(t, "2400.00"),
			Insurance:  amount(t, "1000.00"),
			Mortgage:   amount(t, "750.00"),
			Disability: amount(t, "3600.00"),
			Pension:    amount(t, "1000.00"),
		},
		PAYETax: amount(t, "0.00"),
		Voluntary: calculation.VoluntaryDeductions{
			Sacco:   amount(t, "800.00"),
			Loans:   amount(t, "400.00"),
			Advance: amount(t, "200.00"),
			Welfare: amount(t, "100.00"),
			Other:   amount(t, "50.00"),
			Total:   amount(t, "1550.00"),
		},
		TotalDeductions: amount(t, "5199.00"),
		NetPay:          amount(t, "30401.00"),
	}

	slip, err := snapshotFromResult("batch-1", emp, result)
	require.NoError(t, err)

	assert.Equal(t, "batch-1", slip.BatchID)
	assert.Equal(t, emp.ID, slip.EmployeeID)
	assert.Equal(t, "Wanjiku Kamau", slip.EmployeeName)

	assert.True(t, slip.HouseAllowance.Equal(amount(t, "5000.00")))
	assert.True(t, slip.TransportAllowance.Equal(amount(t, "2000.00")))
	assert.True(t, slip.MedicalAllowance.Equal(amount(t, "1500.00")))
	assert.True(t, slip.OtherAllowances.Equal(amount(t, "500.00")))
	assert.True(t, slip.TotalAllowances.Equal(amount(t, "9000.00")))
	assert.True(t, slip.OvertimeHours.Equal(amount(t, "4.50")))
	assert.True(t, slip.OvertimePay.Equal(amount(t, "1200.00")))

	assert.True(t, slip.NSSFPensionablePay.Equal(amount(t, "35600.00")))

	assert.True(t, slip.PersonalRelief.Equal(amount(t, "2400.00")))
	assert.True(t, slip.InsuranceRelief.Equal(amount(t, "1000.00")))
	assert.True(t, slip.PensionRelief.Equal(amount(t, "1000.00")))
	assert.True(t, slip.MortgageRelief.Equal(amount(t, "750.00")))
	assert.True(t, slip.DisabilityRelief.Equal(amount(t, "3600.00")))

	assert.True(t, slip.TotalDeductions.Equal(amount(t, "5199.00")))
	assert.True(t, slip.NetPay.Equal(amount(t, "30401.00")))
	assert.NotEmpty(t, slip.ID)
	assert.NotEmpty(t, slip.CalculationDetails)
}
