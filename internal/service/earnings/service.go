package earnings

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
)

type EarningsServiceImpl struct {
	earningsRepo earnings.EarningsRepository
	employeeRepo employee.EmployeeRepository
}

func NewEarningsService(
	earningsRepo earnings.EarningsRepository,
	employeeRepo employee.EmployeeRepository,
) earnings.EarningsService {
	return &EarningsServiceImpl{
		earningsRepo: earningsRepo,
		employeeRepo: employeeRepo,
	}
}

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

func (s *EarningsServiceImpl) Record(ctx context.Context, req earnings.RecordEarningRequest) (earnings.MonthlyEarning, error) {
	if err := req.Validate(); err != nil {
		return earnings.MonthlyEarning{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return earnings.MonthlyEarning{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, organizationID, req.EmployeeID); err != nil {
		return earnings.MonthlyEarning{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	earning := &earnings.MonthlyEarning{
		ID:               uuid.NewString(),
		OrganizationID:   organizationID,
		EmployeeID:       req.EmployeeID,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		OvertimeHours:    req.OvertimeHours,
		OvertimeRate:     req.OvertimeRate,
		BonusAmount:      req.BonusAmount.Round(2),
		CommissionAmount: req.CommissionAmount.Round(2),
		Notes:            req.Notes,
	}

	if err := s.earningsRepo.UpsertEarning(ctx, earning); err != nil {
		return earnings.MonthlyEarning{}, err
	}

	return *earning, nil
}

func (s *EarningsServiceImpl) ListForPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]earnings.MonthlyEarning, error) {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	byEmployee, err := s.earningsRepo.ListEarningsForPeriod(ctx, organizationID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	list := make([]earnings.MonthlyEarning, 0, len(byEmployee))
	for _, earning := range byEmployee {
		list = append(list, earning)
	}
	return list, nil
}

func (s *EarningsServiceImpl) AddOneOffDeduction(ctx context.Context, req earnings.OneOffDeductionRequest) (earnings.OneOffDeduction, error) {
	if err := req.Validate(); err != nil {
		return earnings.OneOffDeduction{}, err
	}

	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return earnings.OneOffDeduction{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, organizationID, req.EmployeeID); err != nil {
		return earnings.OneOffDeduction{}, err
	}

	deductionDate, _ := time.Parse("2006-01-02", req.DeductionDate)

	deduction := &earnings.OneOffDeduction{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		EmployeeID:     req.EmployeeID,
		Category:       req.Category,
		Description:    req.Description,
		Amount:         req.Amount.Round(2),
		DeductionDate:  deductionDate,
	}

	if err := s.earningsRepo.CreateOneOffDeduction(ctx, deduction); err != nil {
		return earnings.OneOffDeduction{}, err
	}

	return *deduction, nil
}

func (s *EarningsServiceImpl) RemoveOneOffDeduction(ctx context.Context, id string) error {
	organizationID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.earningsRepo.DeleteOneOffDeduction(ctx, organizationID, id)
}
