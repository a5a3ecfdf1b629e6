package payroll

import (
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MarkPaidRequest struct {
	EmployeeID string           `json:"-"`
	Period     string           `json:"period"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !datekey.IsPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be YYYY-MM"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentRecordResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Period       string           `json:"period"`
	Paid         bool             `json:"paid"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	PaidAt       *string          `json:"paid_at,omitempty"`
}

// PaidStatusResponse is the per-period paid/unpaid map keyed by employee id,
// driving the salary list's status column.
type PaidStatusResponse struct {
	Period string          `json:"period"`
	Status map[string]bool `json:"status"`
}
