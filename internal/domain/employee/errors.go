package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrEmployeeInactive     = errors.New("employee is inactive")
	ErrEmployeeNotInCompany = errors.New("employee does not belong to this organization")
	ErrAllowanceNotFound    = errors.New("recurring allowance not found")
	ErrDeductionNotFound    = errors.New("recurring deduction not found")
)
