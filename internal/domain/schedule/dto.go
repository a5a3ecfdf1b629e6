package schedule

import (
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EntryInput is one day of a roster upsert. Date deliberately accepts any
// shape the data layer produces (day key, epoch, locale string); it is
// normalized exactly once here, at the boundary.
type EntryInput struct {
	Date       any     `json:"date"`
	Shift      string  `json:"shift"`
	LocationID *string `json:"location_id,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

type UpsertEntriesRequest struct {
	EmployeeID string       `json:"employee_id"`
	Entries    []EntryInput `json:"entries"`
}

func (r *UpsertEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for i, entry := range r.Entries {
		if !datekey.IsDayKey(datekey.Normalize(entry.Date)) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].date", Message: "is not a recognizable date"})
		}
		if !validator.IsInSlice(entry.Shift, ShiftTypeValues) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].shift", Message: "must be one of morning, evening, double, rest"})
		}
		if entry.StartTime != nil && !validator.IsValidTimeOfDay(*entry.StartTime) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].start_time", Message: "must be HH:MM"})
		}
		if entry.EndTime != nil && !validator.IsValidTimeOfDay(*entry.EndTime) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + validator.Itoa(i) + "].end_time", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryFilter struct {
	EmployeeID string
	Period     string // YYYY-MM, optional
	LocationID string
}

type EntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Hours      int     `json:"hours"`
	LocationID *string `json:"location_id,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	IsWorked   bool    `json:"is_worked"`
	IsWorking  bool    `json:"is_working"`
}

// RosterCell is one cell of the Monday-first month grid. Day 0 marks a
// leading alignment blank; such cells carry no other data.
type RosterCell struct {
	Day        int     `json:"day"`
	Date       string  `json:"date,omitempty"`
	Shift      *string `json:"shift,omitempty"`
	Hours      int     `json:"hours,omitempty"`
	DayStatus  string  `json:"day_status,omitempty"`  // past, current, future
	WorkStatus string  `json:"work_status,omitempty"` // empty for future days
	Tone       string  `json:"tone,omitempty"`
}

// MonthlyStatsResponse mirrors the per-employee monthly figures shown in the
// calendar detail view.
type MonthlyStatsResponse struct {
	WorkedDays            int             `json:"worked_days"`
	OffDays               int             `json:"off_days"`
	TotalHours            int             `json:"total_hours"`
	EstimatedAmount       decimal.Decimal `json:"estimated_amount"`
	JustifiedAbsences     int             `json:"justified_absences"`
	UnjustifiedAbsences   int             `json:"unjustified_absences"`
	AbsencesWithoutNotice int             `json:"absences_without_notice"`
	LateCount             int             `json:"late_count"`
	InfractionCount       int             `json:"infraction_count"`
}

type RosterResponse struct {
	EmployeeID string               `json:"employee_id"`
	Period     string               `json:"period"`
	Cells      []RosterCell         `json:"cells"`
	Stats      MonthlyStatsResponse `json:"stats"`
}

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	LocationID *string `json:"location_id,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryFilter struct {
	EmployeeID string
	Period     string // YYYY-MM, optional
}

type TimeEntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
}
