package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := s.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubLocationRepo struct {
	location.LocationRepository
}

type stubScheduleRepo struct {
	schedule.ScheduleRepository
	entries []schedule.Entry
	open    *schedule.TimeEntry
	created *schedule.TimeEntry
}

func (s *stubScheduleRepo) ListEntries(ctx context.Context, filter schedule.EntryFilter) ([]schedule.Entry, error) {
	return s.entries, nil
}

func (s *stubScheduleRepo) GetOpenTimeEntry(ctx context.Context, employeeID string) (schedule.TimeEntry, error) {
	if s.open != nil {
		return *s.open, nil
	}
	return schedule.TimeEntry{}, schedule.ErrTimeEntryNotFound
}

func (s *stubScheduleRepo) CreateTimeEntry(ctx context.Context, entry schedule.TimeEntry) (schedule.TimeEntry, error) {
	entry.ID = "te-1"
	s.created = &entry
	return entry, nil
}

// Mid-March 2024, so the month has past, current and future days.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, datekey.Location())
}

func TestMonthlyRoster_AssemblesGridAndStatuses(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-a": {ID: "emp-a"},
	}}
	schedRepo := &stubScheduleRepo{entries: []schedule.Entry{
		{Date: "2024-03-04", Shift: schedule.ShiftMorning, IsWorked: true},
		{Date: "2024-03-15", Shift: schedule.ShiftDouble, IsWorking: true},
		{Date: "2024-03-20", Shift: schedule.ShiftEvening},
	}}

	svc := NewScheduleService(nil, schedRepo, empRepo, &stubLocationRepo{}, fixedClock)

	roster, err := svc.MonthlyRoster(context.Background(), "emp-a", "2024-03")
	require.NoError(t, err)

	// March 2024 starts on a Friday: 4 leading blanks + 31 days.
	require.Len(t, roster.Cells, 35)
	for i := 0; i < 4; i++ {
		assert.Zero(t, roster.Cells[i].Day)
	}

	day := func(d int) schedule.RosterCell { return roster.Cells[4+d-1] }

	past := day(4)
	require.NotNil(t, past.Shift)
	assert.Equal(t, "past", past.DayStatus)
	assert.Equal(t, "worked", past.WorkStatus)
	assert.Equal(t, 9, past.Hours)

	current := day(15)
	assert.Equal(t, "current", current.DayStatus)
	assert.Equal(t, "working", current.WorkStatus)
	assert.Equal(t, 18, current.Hours)

	future := day(20)
	assert.Equal(t, "future", future.DayStatus)
	assert.Empty(t, future.WorkStatus)
	assert.Empty(t, future.Tone)

	// Unassigned day still carries its status, no shift.
	assert.Nil(t, day(5).Shift)
	assert.Equal(t, "past", day(5).DayStatus)

	assert.Equal(t, 3, roster.Stats.WorkedDays)
	assert.Equal(t, 36, roster.Stats.TotalHours)
}

func TestMonthlyRoster_BadPeriod(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(nil, &stubScheduleRepo{}, &stubEmployeeRepo{}, &stubLocationRepo{}, fixedClock)

	_, err := svc.MonthlyRoster(context.Background(), "emp-a", "03/2024")
	assert.ErrorIs(t, err, datekey.ErrInvalidPeriod)
}

func TestClockIn_SecondPunchConflicts(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-a": {ID: "emp-a"},
	}}
	open := schedule.TimeEntry{ID: "te-0", EmployeeID: "emp-a"}
	schedRepo := &stubScheduleRepo{open: &open}

	svc := NewScheduleService(nil, schedRepo, empRepo, &stubLocationRepo{}, fixedClock)

	_, err := svc.ClockIn(context.Background(), schedule.ClockInRequest{EmployeeID: "emp-a"})
	assert.ErrorIs(t, err, schedule.ErrOpenTimeEntry)
}

func TestClockIn_StampsTodayFromInjectedClock(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-a": {ID: "emp-a"},
	}}
	schedRepo := &stubScheduleRepo{}

	svc := NewScheduleService(nil, schedRepo, empRepo, &stubLocationRepo{}, fixedClock)

	entry, err := svc.ClockIn(context.Background(), schedule.ClockInRequest{EmployeeID: "emp-a"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", entry.Date)
	require.NotNil(t, schedRepo.created)
	assert.Equal(t, fixedClock(), schedRepo.created.ClockIn)
}

func TestClockOut_NoOpenEntry(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(nil, &stubScheduleRepo{}, &stubEmployeeRepo{}, &stubLocationRepo{}, fixedClock)

	_, err := svc.ClockOut(context.Background(), "emp-a")
	assert.ErrorIs(t, err, schedule.ErrNoOpenTimeEntry)
}
