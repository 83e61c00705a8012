package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SetActive(ctx context.Context, id string, active bool) error

	AddAllowance(ctx context.Context, employeeID string, req AllowanceRequest) (RecurringAllowance, error)
	ListAllowances(ctx context.Context, employeeID string) ([]RecurringAllowance, error)
	RemoveAllowance(ctx context.Context, employeeID, allowanceID string) error

	AddDeduction(ctx context.Context, employeeID string, req DeductionRequest) (RecurringDeduction, error)
	ListDeductions(ctx context.Context, employeeID string) ([]RecurringDeduction, error)
	RemoveDeduction(ctx context.Context, employeeID, deductionID string) error
}
