package calculation

import (
	"time"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

// Input is everything the engine needs to calculate one employee's payslip.
// All stores have already been consulted; the engine itself performs no I/O.
type Input struct {
	Employee   employee.Employee
	Allowances []employee.RecurringAllowance
	Recurring  []employee.RecurringDeduction
	OneOff     []earnings.OneOffDeduction
	Variable   *earnings.MonthlyEarning

	PeriodStart time.Time
	PeriodEnd   time.Time
}
