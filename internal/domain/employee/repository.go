package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, organizationID, id string) (*Employee, error)
	GetByEmployeeNumber(ctx context.Context, organizationID, employeeNumber string) (*Employee, error)
	List(ctx context.Context, organizationID string, activeOnly bool) ([]Employee, error)
	// ListEligible returns active employees hired on or before the period end.
	ListEligible(ctx context.Context, organizationID string, periodEnd time.Time) ([]Employee, error)
	ListByIDs(ctx context.Context, organizationID string, ids []string) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	SetActive(ctx context.Context, organizationID, id string, active bool) error

	CreateAllowance(ctx context.Context, allowance *RecurringAllowance) error
	ListAllowances(ctx context.Context, employeeID string) ([]RecurringAllowance, error)
	ListAllowancesForEmployees(ctx context.Context, employeeIDs []string) (map[string][]RecurringAllowance, error)
	UpdateAllowance(ctx context.Context, allowance *RecurringAllowance) error
	DeleteAllowance(ctx context.Context, employeeID, allowanceID string) error

	CreateDeduction(ctx context.Context, deduction *RecurringDeduction) error
	ListDeductions(ctx context.Context, employeeID string) ([]RecurringDeduction, error)
	ListDeductionsForEmployees(ctx context.Context, employeeIDs []string) (map[string][]RecurringDeduction, error)
	UpdateDeduction(ctx context.Context, deduction *RecurringDeduction) error
	DeleteDeduction(ctx context.Context, employeeID, deductionID string) error
}
