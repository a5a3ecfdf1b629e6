package employee

import (
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	JobTitle   string           `json:"job_title"`
	Phone      *string          `json:"phone,omitempty"`
	LocationID *string          `json:"location_id,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	HireDate   string           `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FirstName  *string          `json:"first_name,omitempty"`
	LastName   *string          `json:"last_name,omitempty"`
	JobTitle   *string          `json:"job_title,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	LocationID *string          `json:"location_id,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Bonus      *decimal.Decimal `json:"bonus,omitempty"`
	Advance    *decimal.Decimal `json:"advance,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCountersRequest adjusts the discipline counters shown on the staff
// list. Absolute values, not deltas.
type UpdateCountersRequest struct {
	ID              string
	InfractionCount *int `json:"infraction_count,omitempty"`
	AbsenceCount    *int `json:"absence_count,omitempty"`
	LatenessCount   *int `json:"lateness_count,omitempty"`
}

func (r *UpdateCountersRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InfractionCount != nil && *r.InfractionCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "infraction_count", Message: "must be non-negative"})
	}
	if r.AbsenceCount != nil && *r.AbsenceCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "absence_count", Message: "must be non-negative"})
	}
	if r.LatenessCount != nil && *r.LatenessCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "lateness_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	LocationID string
	Status     string
	Search     string
}

// EmployeeResponse is the staff-list row. NetSalaryPreview is the flat
// base-salary-minus-penalties estimate; the calendar detail view shows a
// separate hours-based figure. The two are intentionally different numbers.
type EmployeeResponse struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	FullName         string          `json:"full_name"`
	JobTitle         string          `json:"job_title"`
	Phone            *string         `json:"phone,omitempty"`
	LocationID       *string         `json:"location_id,omitempty"`
	LocationName     *string         `json:"location_name,omitempty"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	Bonus            decimal.Decimal `json:"bonus"`
	Advance          decimal.Decimal `json:"advance"`
	InfractionCount  int             `json:"infraction_count"`
	AbsenceCount     int             `json:"absence_count"`
	LatenessCount    int             `json:"lateness_count"`
	Penalties        decimal.Decimal `json:"penalties"`
	NetSalaryPreview decimal.Decimal `json:"net_salary_preview"`
	Status           string          `json:"status"`
	HireDate         string          `json:"hire_date"`
}
