package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.location_id, e.first_name, e.last_name, e.job_title, e.phone,
	e.base_salary, e.hourly_rate, e.bonus, e.advance,
	e.infraction_count, e.absence_count, e.lateness_count,
	e.status, e.hire_date, e.created_at, e.updated_at, e.deleted_at,
	l.name AS location_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.LocationID, &emp.FirstName, &emp.LastName, &emp.JobTitle, &emp.Phone,
		&emp.BaseSalary, &emp.HourlyRate, &emp.Bonus, &emp.Advance,
		&emp.InfractionCount, &emp.AbsenceCount, &emp.LatenessCount,
		&emp.Status, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.LocationName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		WITH inserted AS (
			INSERT INTO employees (
				id, user_id, location_id, first_name, last_name, job_title, phone,
				base_salary, hourly_rate, status, hire_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING *
		)
		SELECT ` + employeeColumns + `
		FROM inserted e
		LEFT JOIN locations l ON l.id = e.location_id
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(),
		newEmployee.UserID, newEmployee.LocationID, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.JobTitle, newEmployee.Phone, newEmployee.BaseSalary, newEmployee.HourlyRate,
		newEmployee.Status, newEmployee.HireDate,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN locations l ON l.id = e.location_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN locations l ON l.id = e.location_id
		WHERE e.deleted_at IS NULL
	`
	args := []any{}
	argN := 1

	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND e.location_id = $%d", argN)
		args = append(args, filter.LocationID)
		argN++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND e.status = $%d", argN)
		args = append(args, filter.Status)
		argN++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d)", argN, argN)
		args = append(args, "%"+strings.TrimSpace(filter.Search)+"%")
		argN++
	}

	query += " ORDER BY e.first_name, e.last_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. Only the fields present in
// the request are touched.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argN := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argN))
		args = append(args, value)
		argN++
	}

	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.JobTitle != nil {
		appendSet("job_title", *req.JobTitle)
	}
	if req.Phone != nil {
		appendSet("phone", *req.Phone)
	}
	if req.LocationID != nil {
		appendSet("location_id", *req.LocationID)
	}
	if req.BaseSalary != nil {
		appendSet("base_salary", *req.BaseSalary)
	}
	if req.HourlyRate != nil {
		appendSet("hourly_rate", *req.HourlyRate)
	}
	if req.Bonus != nil {
		appendSet("bonus", *req.Bonus)
	}
	if req.Advance != nil {
		appendSet("advance", *req.Advance)
	}
	if req.Status != nil {
		appendSet("status", *req.Status)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id
	`, strings.Join(sets, ", "), argN)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}

	return nil
}

// UpdateCounters implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateCounters(ctx context.Context, req employee.UpdateCountersRequest) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET infraction_count = COALESCE($1, infraction_count),
			absence_count = COALESCE($2, absence_count),
			lateness_count = COALESCE($3, lateness_count),
			updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.InfractionCount, req.AbsenceCount, req.LatenessCount, req.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update counters for employee with id %s: %w", req.ID, err)
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), status = 'inactive', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}

	return nil
}
