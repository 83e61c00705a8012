package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

var (
	periodStart = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
)

func TestAssembleGrossPayFrequency(t *testing.T) {
	cases := []struct {
		name      string
		frequency employee.PayFrequency
		basic     string
		want      string
	}{
		{"monthly passes through", employee.PayFrequencyMonthly, "50000", "50000.00"},
		{"weekly times 4.33", employee.PayFrequencyWeekly, "10000", "43300.00"},
		{"daily times 22", employee.PayFrequencyDaily, "2000", "44000.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := assembleGross(Input{
				Employee: employee.Employee{
					BasicSalary:  dec(t, c.basic),
					PayFrequency: c.frequency,
				},
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			})
			assert.True(t, g.Total.Equal(dec(t, c.want)), "gross = %s, want %s", g.Total.StringFixed(2), c.want)
		})
	}
}

func TestAssembleGrossAllowanceWindows(t *testing.T) {
	april := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	lastFeb := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	in := Input{
		Employee: employee.Employee{
			BasicSalary:  dec(t, "40000"),
			PayFrequency: employee.PayFrequencyMonthly,
		},
		Allowances: []employee.RecurringAllowance{
			{Category: employee.AllowanceHouse, Amount: dec(t, "10000"), IsActive: true, EffectiveDate: periodStart},
			{Category: employee.AllowanceTransport, Amount: dec(t, "5000"), IsActive: false, EffectiveDate: periodStart},
			{Category: employee.AllowanceMedical, Amount: dec(t, "3000"), IsActive: true, EffectiveDate: april},
			{Category: employee.AllowanceOther, Amount: dec(t, "2000"), IsActive: true, EffectiveDate: periodStart, EndDate: &lastFeb},
		},
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	g := assembleGross(in)

	assert.True(t, g.HouseAllowance.Equal(dec(t, "10000")))
	assert.True(t, g.TransportAllowance.IsZero(), "inactive allowance must be skipped")
	assert.True(t, g.MedicalAllowance.IsZero(), "allowance effective after the period must be skipped")
	assert.True(t, g.OtherAllowances.IsZero(), "allowance ended before the period must be skipped")
	assert.True(t, g.TotalAllowances.Equal(dec(t, "10000")))
	assert.True(t, g.Total.Equal(dec(t, "50000.00")))
}

func TestAssembleGrossVariableEarnings(t *testing.T) {
	in := Input{
		Employee: employee.Employee{
			BasicSalary:  dec(t, "60000"),
			PayFrequency: employee.PayFrequencyMonthly,
		},
		Variable: &earnings.MonthlyEarning{
			OvertimeHours:    dec(t, "10.5"),
			OvertimeRate:     dec(t, "337.125"),
			BonusAmount:      dec(t, "15000"),
			CommissionAmount: dec(t, "2500.555"),
		},
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	g := assembleGross(in)

	assert.True(t, g.OvertimeHours.Equal(dec(t, "10.50")))
	assert.True(t, g.OvertimePay.Equal(dec(t, "3539.81")), "overtime rounded at the line item, got %s", g.OvertimePay)
	assert.True(t, g.BonusAmount.Equal(dec(t, "15000")))
	assert.True(t, g.CommissionPay.Equal(dec(t, "2500.56")))
	assert.True(t, g.Total.Equal(dec(t, "81040.37")))
}
