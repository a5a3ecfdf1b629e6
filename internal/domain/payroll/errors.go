package payroll

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment record not found")
	ErrAlreadyPaid      = errors.New("salary already marked as paid for this period")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrEmployeeNotFound = errors.New("employee not found")
)
