package earnings

import (
	"context"
	"time"
)

type EarningsRepository interface {
	UpsertEarning(ctx context.Context, earning *MonthlyEarning) error
	GetEarning(ctx context.Context, organizationID, employeeID string, periodStart, periodEnd time.Time) (*MonthlyEarning, error)
	ListEarningsForPeriod(ctx context.Context, organizationID string, periodStart, periodEnd time.Time) (map[string]MonthlyEarning, error)
	DeleteEarning(ctx context.Context, organizationID, id string) error

	CreateOneOffDeduction(ctx context.Context, deduction *OneOffDeduction) error
	GetOneOffDeduction(ctx context.Context, organizationID, id string) (*OneOffDeduction, error)
	// ListUnprocessedForPeriod returns deductions dated within the period that
	// no batch has consumed, plus those already claimed by batchID so a
	// recalculation sees its own deductions again.
	ListUnprocessedForPeriod(ctx context.Context, organizationID string, periodStart, periodEnd time.Time, batchID string) (map[string][]OneOffDeduction, error)
	MarkProcessed(ctx context.Context, ids []string, batchID string, processedAt time.Time) error
	ReleaseProcessed(ctx context.Context, batchID string) error
	DeleteOneOffDeduction(ctx context.Context, organizationID, id string) error
}
