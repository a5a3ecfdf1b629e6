package schedule

import "context"

type ScheduleService interface {
	UpsertEntries(ctx context.Context, req UpsertEntriesRequest) ([]EntryResponse, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
	MonthlyRoster(ctx context.Context, employeeID, period string) (RosterResponse, error)

	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, employeeID string) (TimeEntryResponse, error)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) ([]TimeEntryResponse, error)
}
