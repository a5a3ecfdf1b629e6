package postgresql

import (
	"context"
	"fmt"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const entryColumns = `
	id, employee_id, date, shift, location_id, start_time, end_time,
	is_worked, is_working, created_at, updated_at
`

func scanEntry(row pgx.Row) (schedule.Entry, error) {
	var entry schedule.Entry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Shift, &entry.LocationID,
		&entry.StartTime, &entry.EndTime, &entry.IsWorked, &entry.IsWorking,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// UpsertEntries implements schedule.ScheduleRepository. One roster entry per
// (employee, date); a second write for the same day replaces the first.
func (s *scheduleRepositoryImpl) UpsertEntries(ctx context.Context, entries []schedule.Entry) ([]schedule.Entry, error) {
	var upserted []schedule.Entry

	err := WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO schedule_entries (id, employee_id, date, shift, location_id, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id, date) DO UPDATE
			SET shift = EXCLUDED.shift,
				location_id = EXCLUDED.location_id,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				updated_at = NOW()
			RETURNING ` + entryColumns + `
		`

		for _, entry := range entries {
			saved, err := scanEntry(tx.QueryRow(ctx, query,
				uuid.NewString(),
				entry.EmployeeID, entry.Date, entry.Shift, entry.LocationID,
				entry.StartTime, entry.EndTime,
			))
			if err != nil {
				return fmt.Errorf("failed to upsert entry for %s on %s: %w", entry.EmployeeID, entry.Date, err)
			}
			upserted = append(upserted, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return upserted, nil
}

// ListEntries implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) ListEntries(ctx context.Context, filter schedule.EntryFilter) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + entryColumns + `
		FROM schedule_entries
		WHERE 1=1
	`
	args := []any{}
	argN := 1

	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", argN)
		args = append(args, filter.EmployeeID)
		argN++
	}
	if filter.Period != "" {
		query += fmt.Sprintf(" AND left(date, 7) = $%d", argN)
		args = append(args, filter.Period)
		argN++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", argN)
		args = append(args, filter.LocationID)
		argN++
	}

	query += " ORDER BY date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetEntryByID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetEntryByID(ctx context.Context, id string) (schedule.Entry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + entryColumns + `
		FROM schedule_entries
		WHERE id = $1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrEntryNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to get schedule entry with id %s: %w", id, err)
	}

	return entry, nil
}

// DeleteEntry implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) DeleteEntry(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM schedule_entries WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete schedule entry with id %s: %w", id, err)
	}

	return nil
}

const timeEntryColumns = `
	id, employee_id, date, clock_in, clock_out, location_id, created_at
`

func scanTimeEntry(row pgx.Row) (schedule.TimeEntry, error) {
	var entry schedule.TimeEntry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.LocationID, &entry.CreatedAt,
	)
	return entry, err
}

// CreateTimeEntry implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) CreateTimeEntry(ctx context.Context, entry schedule.TimeEntry) (schedule.TimeEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO time_entries (id, employee_id, date, clock_in, location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + timeEntryColumns + `
	`

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		uuid.NewString(),
		entry.EmployeeID, entry.Date, entry.ClockIn, entry.LocationID,
	))
	if err != nil {
		return schedule.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

// GetOpenTimeEntry implements schedule.ScheduleRepository. An open entry has
// no clock-out yet; at most one exists per employee.
func (s *scheduleRepositoryImpl) GetOpenTimeEntry(ctx context.Context, employeeID string) (schedule.TimeEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.TimeEntry{}, schedule.ErrTimeEntryNotFound
		}
		return schedule.TimeEntry{}, fmt.Errorf("failed to get open time entry for employee %s: %w", employeeID, err)
	}

	return entry, nil
}

// CloseTimeEntry implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) CloseTimeEntry(ctx context.Context, id string) (schedule.TimeEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE time_entries
		SET clock_out = NOW()
		WHERE id = $1 AND clock_out IS NULL
		RETURNING ` + timeEntryColumns + `
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.TimeEntry{}, schedule.ErrTimeEntryNotFound
		}
		return schedule.TimeEntry{}, fmt.Errorf("failed to close time entry with id %s: %w", id, err)
	}

	return entry, nil
}

// ListTimeEntries implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) ListTimeEntries(ctx context.Context, filter schedule.TimeEntryFilter) ([]schedule.TimeEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE 1=1
	`
	args := []any{}
	argN := 1

	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND employee_id = $%d", argN)
		args = append(args, filter.EmployeeID)
		argN++
	}
	if filter.Period != "" {
		query += fmt.Sprintf(" AND left(date, 7) = $%d", argN)
		args = append(args, filter.Period)
		argN++
	}

	query += " ORDER BY clock_in DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
