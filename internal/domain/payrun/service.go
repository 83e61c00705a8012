package payrun

import "context"

type PayrunService interface {
	// CalculateBatch creates or reuses the batch named by the request's
	// batch number, runs the engine over the eligible employees and replaces
	// the batch's payslip snapshots atomically.
	CalculateBatch(ctx context.Context, req CalculateBatchRequest) (RunSummary, error)
	Preview(ctx context.Context, req PreviewRequest) (PayslipResponse, error)

	GetBatch(ctx context.Context, id string) (BatchResponse, error)
	ListBatches(ctx context.Context, status *BatchStatus) ([]BatchResponse, error)
	ListPayslips(ctx context.Context, batchID string) ([]PayslipResponse, error)

	Review(ctx context.Context, batchID, notes string) (BatchResponse, error)
	Approve(ctx context.Context, batchID, notes string) (BatchResponse, error)
	Lock(ctx context.Context, batchID string) (BatchResponse, error)
	Remit(ctx context.Context, batchID, notes string) (BatchResponse, error)
	Cancel(ctx context.Context, batchID, reason string) (BatchResponse, error)

	UpdatePayment(ctx context.Context, payslipID string, req UpdatePaymentRequest) (PayslipResponse, error)
}
