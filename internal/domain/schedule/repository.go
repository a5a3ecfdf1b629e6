package schedule

import "context"

type ScheduleRepository interface {
	UpsertEntries(ctx context.Context, entries []Entry) ([]Entry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]Entry, error)
	GetEntryByID(ctx context.Context, id string) (Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	CreateTimeEntry(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetOpenTimeEntry(ctx context.Context, employeeID string) (TimeEntry, error)
	CloseTimeEntry(ctx context.Context, id string) (TimeEntry, error)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, error)
}
