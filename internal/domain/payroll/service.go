package payroll

import "context"

type PayrollService interface {
	// PaidStatus derives the paid/unpaid map for every employee in a period.
	PaidStatus(ctx context.Context, period string) (PaidStatusResponse, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PaymentRecordResponse, error)
	// PayslipPDF renders the monthly payslip for one employee as a PDF.
	PayslipPDF(ctx context.Context, employeeID, period string) ([]byte, error)
}
