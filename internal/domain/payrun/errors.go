package payrun

import "errors"

var (
	ErrBatchNotFound            = errors.New("payroll batch not found")
	ErrBatchNumberExists        = errors.New("batch number already exists for this organization")
	ErrBatchLocked              = errors.New("payroll batch is locked")
	ErrInvalidStatusTransition  = errors.New("invalid batch status transition")
	ErrPayslipNotFound          = errors.New("payslip not found")
	ErrPayslipImmutable         = errors.New("payslip belongs to a locked batch and cannot be modified")
	ErrNoEligibleEmployees      = errors.New("no eligible employees for this batch")
	ErrBatchConcurrentlyUpdated = errors.New("batch was modified by another request")
)
