package earnings

import "errors"

var (
	ErrEarningNotFound    = errors.New("monthly earning not found")
	ErrEarningExists      = errors.New("monthly earning already recorded for this period")
	ErrDeductionNotFound  = errors.New("one-off deduction not found")
	ErrDeductionProcessed = errors.New("one-off deduction already processed in a batch")
)
