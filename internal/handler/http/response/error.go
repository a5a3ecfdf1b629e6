package response

import (
	"errors"
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/auth"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/payroll"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Access errors
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, schedule.ErrEmployeeNotFound),
		errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound),
		errors.Is(err, employee.ErrLocationNotFound),
		errors.Is(err, schedule.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrLocationNameExists):
		Conflict(w, "Location name already exists")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")
	case errors.Is(err, schedule.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, schedule.ErrDuplicateEntry):
		Conflict(w, "Schedule entry already exists for this day")
	case errors.Is(err, schedule.ErrOpenTimeEntry):
		Conflict(w, "Employee already has an open time entry")
	case errors.Is(err, schedule.ErrNoOpenTimeEntry):
		Conflict(w, "Employee has no open time entry")
	case errors.Is(err, schedule.ErrInvalidShiftType),
		errors.Is(err, schedule.ErrInvalidDateKey):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Payment record not found")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Salary already marked as paid for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, datekey.ErrInvalidPeriod):
		BadRequest(w, "Invalid period, expected YYYY-MM", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
