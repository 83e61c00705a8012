package earnings

import (
	"context"
	"time"
)

type EarningsService interface {
	Record(ctx context.Context, req RecordEarningRequest) (MonthlyEarning, error)
	ListForPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]MonthlyEarning, error)

	AddOneOffDeduction(ctx context.Context, req OneOffDeductionRequest) (OneOffDeduction, error)
	RemoveOneOffDeduction(ctx context.Context, id string) error
}
