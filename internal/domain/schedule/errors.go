package schedule

import "errors"

var (
	ErrEntryNotFound     = errors.New("schedule entry not found")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrInvalidShiftType  = errors.New("invalid shift type")
	ErrInvalidDateKey    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDuplicateEntry    = errors.New("schedule entry already exists for this day")
	ErrOpenTimeEntry     = errors.New("employee already has an open time entry")
	ErrNoOpenTimeEntry   = errors.New("employee has no open time entry")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrLocationNotFound  = errors.New("location not found")
)
