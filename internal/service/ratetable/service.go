package ratetable

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
)

type RateTableServiceImpl struct {
	repo ratetable.RateTableRepository
}

func NewRateTableService(repo ratetable.RateTableRepository) ratetable.RateTableService {
	return &RateTableServiceImpl{repo: repo}
}

func userIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

func (s *RateTableServiceImpl) Create(ctx context.Context, req ratetable.CreateRateTableRequest) (ratetable.RateTableResponse, error) {
	if err := req.Validate(); err != nil {
		return ratetable.RateTableResponse{}, err
	}

	effective, _ := time.Parse("2006-01-02", req.EffectiveDate)
	var endDate *time.Time
	if req.EndDate != nil {
		d, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &d
	}

	table := ratetable.RateTable{
		ID:            uuid.NewString(),
		Category:      ratetable.Category(req.Category),
		EffectiveDate: effective,
		EndDate:       endDate,
		IsActive:      true,
		TaxBands:      req.TaxBands,
		Relief:        req.Relief,
		Contribution:  req.Contribution,
		Levy:          req.Levy,
		Cap:           req.Cap,
		CreatedBy:     userIDFromContext(ctx),
		Notes:         req.Notes,
	}
	if err := table.Validate(); err != nil {
		return ratetable.RateTableResponse{}, err
	}

	// One active table per category per date, enforced before insert.
	overlap, err := s.repo.CountEffectiveOverlap(ctx, table.Category, table.EffectiveDate, table.EndDate)
	if err != nil {
		return ratetable.RateTableResponse{}, err
	}
	if overlap > 0 {
		return ratetable.RateTableResponse{}, ratetable.ErrRateTableExists
	}

	created, err := s.repo.Create(ctx, table)
	if err != nil {
		return ratetable.RateTableResponse{}, err
	}

	return toResponse(created), nil
}

func (s *RateTableServiceImpl) Get(ctx context.Context, id string) (ratetable.RateTableResponse, error) {
	table, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ratetable.RateTableResponse{}, err
	}
	return toResponse(table), nil
}

func (s *RateTableServiceImpl) List(ctx context.Context, category *ratetable.Category, activeOnly bool) ([]ratetable.RateTableResponse, error) {
	tables, err := s.repo.List(ctx, category, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]ratetable.RateTableResponse, 0, len(tables))
	for _, table := range tables {
		responses = append(responses, toResponse(table))
	}
	return responses, nil
}

func (s *RateTableServiceImpl) Approve(ctx context.Context, id string) (ratetable.RateTableResponse, error) {
	table, err := s.repo.Approve(ctx, id, userIDFromContext(ctx))
	if err != nil {
		return ratetable.RateTableResponse{}, err
	}
	return toResponse(table), nil
}

func (s *RateTableServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *RateTableServiceImpl) ResolveEffective(ctx context.Context, asOf time.Time) ([]ratetable.RateTableResponse, error) {
	responses := make([]ratetable.RateTableResponse, 0, len(ratetable.Categories))
	for _, category := range ratetable.Categories {
		table, err := s.repo.ResolveCurrent(ctx, category, asOf)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", category, err)
		}
		responses = append(responses, toResponse(table))
	}
	return responses, nil
}

func toResponse(t ratetable.RateTable) ratetable.RateTableResponse {
	resp := ratetable.RateTableResponse{
		ID:            t.ID,
		Category:      string(t.Category),
		EffectiveDate: t.EffectiveDate.Format("2006-01-02"),
		IsActive:      t.IsActive,
		TaxBands:      t.TaxBands,
		Relief:        t.Relief,
		Contribution:  t.Contribution,
		Levy:          t.Levy,
		Cap:           t.Cap,
		CreatedBy:     t.CreatedBy,
		ApprovedBy:    t.ApprovedBy,
		Notes:         t.Notes,
	}
	if t.EndDate != nil {
		end := t.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	if t.ApprovedAt != nil {
		approved := t.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approved
	}
	return resp
}
