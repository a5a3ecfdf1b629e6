package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord marks whether an employee's salary was paid for a period.
// At most one record exists per (employee, period); the store enforces it.
type PaymentRecord struct {
	ID         string
	EmployeeID string
	Period     string // YYYY-MM
	Paid       bool
	Amount     *decimal.Decimal
	PaidAt     *time.Time
	PaidBy     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
