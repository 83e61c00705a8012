package ratetable

import (
	"context"
	"time"
)

// RateTableRepository defines data access for statutory rate tables.
// Tables are system-wide (statutory rates are national, not per tenant).
type RateTableRepository interface {
	Create(ctx context.Context, table RateTable) (RateTable, error)
	GetByID(ctx context.Context, id string) (RateTable, error)
	List(ctx context.Context, category *Category, activeOnly bool) ([]RateTable, error)

	// ResolveCurrent returns the single table effective for the category on
	// asOf. ErrRateTableNotFound when none matches; ErrRateTableConflict when
	// more than one matches (data-integrity violation, never picked from
	// arbitrarily).
	ResolveCurrent(ctx context.Context, category Category, asOf time.Time) (RateTable, error)

	// CountEffectiveOverlap reports how many active tables of the category
	// would overlap the [effective, end] window. Used to enforce the one
	// active table per category per date invariant at write time.
	CountEffectiveOverlap(ctx context.Context, category Category, effective time.Time, end *time.Time) (int, error)

	Approve(ctx context.Context, id string, approvedBy string) (RateTable, error)
	Deactivate(ctx context.Context, id string) error
}
