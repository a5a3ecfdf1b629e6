package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/roster"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	locationRepo location.LocationRepository
	now          func() time.Time
}

// NewScheduleService builds the schedule service. The clock is injected so
// "today" can be pinned in tests; pass nil for the wall clock.
func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	now func() time.Time,
) schedule.ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
		now:          now,
	}
}

func (s *ScheduleServiceImpl) UpsertEntries(ctx context.Context, req schedule.UpsertEntriesRequest) ([]schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, schedule.ErrEmployeeNotFound
		}
		return nil, err
	}

	entries := make([]schedule.Entry, 0, len(req.Entries))
	for _, input := range req.Entries {
		if input.LocationID != nil {
			if _, err := s.locationRepo.GetByID(ctx, *input.LocationID); err != nil {
				return nil, schedule.ErrLocationNotFound
			}
		}
		entries = append(entries, schedule.Entry{
			EmployeeID: req.EmployeeID,
			Date:       datekey.Normalize(input.Date),
			Shift:      schedule.ClassifyShift(input.Shift),
			LocationID: input.LocationID,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
		})
	}

	upserted, err := s.scheduleRepo.UpsertEntries(ctx, entries)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(upserted))
	for _, entry := range upserted {
		responses = append(responses, toEntryResponse(entry))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) ListEntries(ctx context.Context, filter schedule.EntryFilter) ([]schedule.EntryResponse, error) {
	if filter.Period != "" && !datekey.IsPeriod(filter.Period) {
		return nil, datekey.ErrInvalidPeriod
	}

	entries, err := s.scheduleRepo.ListEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetEntryByID(ctx, id); err != nil {
		return err
	}
	return s.scheduleRepo.DeleteEntry(ctx, id)
}

// MonthlyRoster assembles the calendar view: the Monday-first grid, one
// status-classified cell per day, and the monthly totals. Everything is
// derived fresh from the employee's entries for the period.
func (s *ScheduleServiceImpl) MonthlyRoster(ctx context.Context, employeeID, period string) (schedule.RosterResponse, error) {
	year, month, err := datekey.ParsePeriod(period)
	if err != nil {
		return schedule.RosterResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return schedule.RosterResponse{}, err
	}

	entries, err := s.scheduleRepo.ListEntries(ctx, schedule.EntryFilter{
		EmployeeID: employeeID,
		Period:     period,
	})
	if err != nil {
		return schedule.RosterResponse{}, err
	}

	today := datekey.Today(s.now())

	grid := roster.MonthGrid(year, month, entries)
	cells := make([]schedule.RosterCell, 0, len(grid))
	for _, cell := range grid {
		if cell.Day == 0 {
			cells = append(cells, schedule.RosterCell{})
			continue
		}

		status := roster.ClassifyDay(cell.Date, today)
		rc := schedule.RosterCell{
			Day:       cell.Day,
			Date:      cell.Date,
			DayStatus: string(status),
		}
		if cell.Entry != nil {
			shift := string(cell.Entry.Shift)
			rc.Shift = &shift
			rc.Hours = cell.Entry.Shift.Hours()
			rc.WorkStatus, rc.Tone = roster.WorkStatus(status, cell.Entry.IsWorked, cell.Entry.IsWorking)
		}
		cells = append(cells, rc)
	}

	stats := roster.ComputeMonthlyStats(emp, entries, year, month)

	return schedule.RosterResponse{
		EmployeeID: employeeID,
		Period:     period,
		Cells:      cells,
		Stats: schedule.MonthlyStatsResponse{
			WorkedDays:            stats.WorkedDays,
			OffDays:               stats.OffDays,
			TotalHours:            stats.TotalHours,
			EstimatedAmount:       stats.EstimatedAmount,
			JustifiedAbsences:     stats.JustifiedAbsences,
			UnjustifiedAbsences:   stats.UnjustifiedAbsences,
			AbsencesWithoutNotice: stats.AbsencesWithoutNotice,
			LateCount:             stats.LateCount,
			InfractionCount:       stats.InfractionCount,
		},
	}, nil
}

func (s *ScheduleServiceImpl) ClockIn(ctx context.Context, req schedule.ClockInRequest) (schedule.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TimeEntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.TimeEntryResponse{}, schedule.ErrEmployeeNotFound
		}
		return schedule.TimeEntryResponse{}, err
	}

	if _, err := s.scheduleRepo.GetOpenTimeEntry(ctx, req.EmployeeID); err == nil {
		return schedule.TimeEntryResponse{}, schedule.ErrOpenTimeEntry
	} else if !errors.Is(err, schedule.ErrTimeEntryNotFound) {
		return schedule.TimeEntryResponse{}, err
	}

	now := s.now()
	entry, err := s.scheduleRepo.CreateTimeEntry(ctx, schedule.TimeEntry{
		EmployeeID: req.EmployeeID,
		Date:       datekey.Today(now),
		ClockIn:    now,
		LocationID: req.LocationID,
	})
	if err != nil {
		return schedule.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(entry), nil
}

func (s *ScheduleServiceImpl) ClockOut(ctx context.Context, employeeID string) (schedule.TimeEntryResponse, error) {
	open, err := s.scheduleRepo.GetOpenTimeEntry(ctx, employeeID)
	if err != nil {
		if errors.Is(err, schedule.ErrTimeEntryNotFound) {
			return schedule.TimeEntryResponse{}, schedule.ErrNoOpenTimeEntry
		}
		return schedule.TimeEntryResponse{}, err
	}

	closed, err := s.scheduleRepo.CloseTimeEntry(ctx, open.ID)
	if err != nil {
		return schedule.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(closed), nil
}

func (s *ScheduleServiceImpl) ListTimeEntries(ctx context.Context, filter schedule.TimeEntryFilter) ([]schedule.TimeEntryResponse, error) {
	if filter.Period != "" && !datekey.IsPeriod(filter.Period) {
		return nil, datekey.ErrInvalidPeriod
	}

	entries, err := s.scheduleRepo.ListTimeEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}
	return responses, nil
}

func toEntryResponse(entry schedule.Entry) schedule.EntryResponse {
	return schedule.EntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		Shift:      string(entry.Shift),
		Hours:      entry.Shift.Hours(),
		LocationID: entry.LocationID,
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		IsWorked:   entry.IsWorked,
		IsWorking:  entry.IsWorking,
	}
}

func toTimeEntryResponse(entry schedule.TimeEntry) schedule.TimeEntryResponse {
	resp := schedule.TimeEntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		ClockIn:    entry.ClockIn.In(datekey.Location()).Format("15:04"),
		LocationID: entry.LocationID,
	}
	if entry.ClockOut != nil {
		out := entry.ClockOut.In(datekey.Location()).Format("15:04")
		resp.ClockOut = &out
	}
	return resp
}
