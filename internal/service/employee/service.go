package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Helper to get organization_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (organizationID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", "", fmt.Errorf("organization_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return organizationID, userID, nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateHired, _ := time.Parse("2006-01-02", req.DateHired)

	emp := &employee.Employee{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Email:          req.Email,
		NationalID:     req.NationalID,
		KRAPin:         req.KRAPin,
		NSSFNumber:     req.NSSFNumber,
		SHANumber:      req.SHANumber,
		JobTitle:       req.JobTitle,
		Department:     req.Department,
		DateHired:      dateHired,
		IsActive:       true,

		BasicSalary:  req.BasicSalary,
		PayFrequency: employee.PayFrequency(req.PayFrequency),

		HasDisabilityExemption: req.HasDisabilityExemption,
		InsuranceReliefAmount:  req.InsuranceReliefAmount,
		PensionContribution:    req.PensionContribution,
		MortgageInterest:       req.MortgageInterest,

		BankName:      req.BankName,
		BankBranch:    req.BankBranch,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, organizationID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employee.ToResponse(&employees[i]))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&emp.FirstName, req.FirstName)
	applyString(&emp.MiddleName, req.MiddleName)
	applyString(&emp.LastName, req.LastName)
	applyString(&emp.Email, req.Email)
	applyString(&emp.JobTitle, req.JobTitle)
	applyString(&emp.Department, req.Department)
	applyString(&emp.BankName, req.BankName)
	applyString(&emp.BankBranch, req.BankBranch)
	applyString(&emp.AccountNumber, req.AccountNumber)
	applyString(&emp.AccountName, req.AccountName)

	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.PayFrequency != nil {
		emp.PayFrequency = employee.PayFrequency(*req.PayFrequency)
	}
	if req.HasDisabilityExemption != nil {
		emp.HasDisabilityExemption = *req.HasDisabilityExemption
	}
	if req.InsuranceReliefAmount != nil {
		emp.InsuranceReliefAmount = *req.InsuranceReliefAmount
	}
	if req.PensionContribution != nil {
		emp.PensionContribution = *req.PensionContribution
	}
	if req.MortgageInterest != nil {
		emp.MortgageInterest = *req.MortgageInterest
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.SetActive(ctx, organizationID, id, active)
}

// requireEmployee checks the employee exists in the caller's organization
// before touching its allowances or deductions.
func (s *EmployeeServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.employeeRepo.GetByID(ctx, organizationID, employeeID)
	return err
}

func (s *EmployeeServiceImpl) AddAllowance(ctx context.Context, employeeID string, req employee.AllowanceRequest) (employee.RecurringAllowance, error) {
	if err := req.Validate(); err != nil {
		return employee.RecurringAllowance{}, err
	}
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return employee.RecurringAllowance{}, err
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)
	allowance := &employee.RecurringAllowance{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		Category:      employee.AllowanceCategory(req.Category),
		Description:   req.Description,
		Amount:        req.Amount.Round(2),
		IsActive:      true,
		EffectiveDate: effectiveDate,
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		allowance.EndDate = &end
	}

	if err := s.employeeRepo.CreateAllowance(ctx, allowance); err != nil {
		return employee.RecurringAllowance{}, err
	}

	return *allowance, nil
}

func (s *EmployeeServiceImpl) ListAllowances(ctx context.Context, employeeID string) ([]employee.RecurringAllowance, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListAllowances(ctx, employeeID)
}

func (s *EmployeeServiceImpl) RemoveAllowance(ctx context.Context, employeeID, allowanceID string) error {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return err
	}
	return s.employeeRepo.DeleteAllowance(ctx, employeeID, allowanceID)
}

func (s *EmployeeServiceImpl) AddDeduction(ctx context.Context, employeeID string, req employee.DeductionRequest) (employee.RecurringDeduction, error) {
	if err := req.Validate(); err != nil {
		return employee.RecurringDeduction{}, err
	}
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return employee.RecurringDeduction{}, err
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)
	deduction := &employee.RecurringDeduction{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		Category:      employee.DeductionCategory(req.Category),
		Description:   req.Description,
		Amount:        req.Amount.Round(2),
		IsActive:      true,
		EffectiveDate: effectiveDate,
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		deduction.EndDate = &end
	}

	if err := s.employeeRepo.CreateDeduction(ctx, deduction); err != nil {
		return employee.RecurringDeduction{}, err
	}

	return *deduction, nil
}

func (s *EmployeeServiceImpl) ListDeductions(ctx context.Context, employeeID string) ([]employee.RecurringDeduction, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListDeductions(ctx, employeeID)
}

func (s *EmployeeServiceImpl) RemoveDeduction(ctx context.Context, employeeID, deductionID string) error {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return err
	}
	return s.employeeRepo.DeleteDeduction(ctx, employeeID, deductionID)
}

