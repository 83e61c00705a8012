package ratetable

import "errors"

var (
	ErrRateTableNotFound  = errors.New("no effective rate table for category and date")
	ErrRateTableConflict  = errors.New("multiple rate tables effective for the same category and date")
	ErrRateTableExists    = errors.New("rate table already exists for this category and effective date")
	ErrRateTableImmutable = errors.New("rate table values cannot be modified once created")
	ErrInvalidCategory    = errors.New("invalid rate table category")
)
