package payroll

import "context"

type PayrollRepository interface {
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (PaymentRecord, error)
	ListByPeriod(ctx context.Context, period string) ([]PaymentRecord, error)
	MarkPaid(ctx context.Context, record PaymentRecord) (PaymentRecord, error)
}
