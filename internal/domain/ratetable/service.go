package ratetable

import (
	"context"
	"time"
)

type RateTableService interface {
	Create(ctx context.Context, req CreateRateTableRequest) (RateTableResponse, error)
	Get(ctx context.Context, id string) (RateTableResponse, error)
	List(ctx context.Context, category *Category, activeOnly bool) ([]RateTableResponse, error)
	Approve(ctx context.Context, id string) (RateTableResponse, error)
	Deactivate(ctx context.Context, id string) error
	// ResolveEffective returns the full effective set, one table per
	// category, for the given date.
	ResolveEffective(ctx context.Context, asOf time.Time) ([]RateTableResponse, error)
}
