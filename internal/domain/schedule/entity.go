package schedule

import "time"

// ShiftType is the categorical label for a day's work pattern.
type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
	ShiftDouble  ShiftType = "double"
	ShiftRest    ShiftType = "rest"
)

var ShiftTypeValues = []string{
	string(ShiftMorning),
	string(ShiftEvening),
	string(ShiftDouble),
	string(ShiftRest),
}

const (
	SingleShiftHours = 9
	DoubleShiftHours = 18
)

// ClassifyShift maps a raw shift label to its ShiftType. Unrecognized labels
// classify as rest; classification never fails.
func ClassifyShift(label string) ShiftType {
	switch ShiftType(label) {
	case ShiftMorning, ShiftEvening, ShiftDouble, ShiftRest:
		return ShiftType(label)
	default:
		return ShiftRest
	}
}

// IsSingle reports whether the shift counts as one worked shift.
func (s ShiftType) IsSingle() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// IsDouble reports whether the shift counts as a double.
func (s ShiftType) IsDouble() bool {
	return s == ShiftDouble
}

// IsRest reports whether the day is off.
func (s ShiftType) IsRest() bool {
	return !s.IsSingle() && !s.IsDouble()
}

// Hours returns the hour contribution of the shift.
func (s ShiftType) Hours() int {
	switch {
	case s.IsDouble():
		return DoubleShiftHours
	case s.IsSingle():
		return SingleShiftHours
	default:
		return 0
	}
}

// Entry is one employee-day shift assignment. Date is the canonical
// YYYY-MM-DD key; it is the join key against payments and the calendar grid.
type Entry struct {
	ID         string
	EmployeeID string
	Date       string
	Shift      ShiftType
	LocationID *string
	StartTime  *string // "HH:MM", optional
	EndTime    *string // "HH:MM", optional
	IsWorked   bool
	IsWorking  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TimeEntry is a raw clock punch, kept separate from the planned roster.
type TimeEntry struct {
	ID         string
	EmployeeID string
	Date       string
	ClockIn    time.Time
	ClockOut   *time.Time
	LocationID *string
	CreatedAt  time.Time
}
