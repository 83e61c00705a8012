package payrun

import (
	"context"
	"time"
)

// Transition describes one guarded status change. The repository applies it
// only when the batch is currently in From; a mismatch surfaces as
// ErrBatchConcurrentlyUpdated.
type Transition struct {
	From    BatchStatus
	To      BatchStatus
	ActorID string
	At      time.Time
	Notes   string
}

// PaymentUpdate carries the only payslip fields mutable after lock.
type PaymentUpdate struct {
	PayslipSent      *bool
	PayslipSentAt    *time.Time
	PaymentProcessed *bool
	ProcessedAt      *time.Time
	PaymentReference *string
}

type PayrunRepository interface {
	CreateBatch(ctx context.Context, batch *PayrollBatch) error
	GetBatchByID(ctx context.Context, organizationID, id string) (*PayrollBatch, error)
	GetBatchByNumber(ctx context.Context, organizationID, batchNumber string) (*PayrollBatch, error)
	ListBatches(ctx context.Context, organizationID string, status *BatchStatus) ([]PayrollBatch, error)
	TransitionBatch(ctx context.Context, organizationID, id string, t Transition) error
	UpdateBatchTotals(ctx context.Context, id string, batch *PayrollBatch) error

	// ReplaceSnapshots deletes the batch's existing payslips and inserts the
	// new set, in the caller's transaction. It refuses with ErrBatchLocked
	// once the batch is locked or remitted.
	ReplaceSnapshots(ctx context.Context, batchID string, slips []PayslipRecord) error
	ListSnapshots(ctx context.Context, organizationID, batchID string) ([]PayslipRecord, error)
	GetSnapshotByID(ctx context.Context, organizationID, payslipID string) (*PayslipRecord, error)
	// UpdateSnapshotPayment applies the post-lock whitelist fields only and
	// fails with ErrPayslipNotFound when the payslip does not exist.
	UpdateSnapshotPayment(ctx context.Context, organizationID, payslipID string, update PaymentUpdate) error
}
