package postgresql

import (
	"context"
	"fmt"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/payroll"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const paymentColumns = `
	p.id, p.employee_id, p.period, p.paid, p.amount, p.paid_at, p.paid_by,
	p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanPayment(row pgx.Row) (payroll.PaymentRecord, error) {
	var record payroll.PaymentRecord
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Period, &record.Paid, &record.Amount,
		&record.PaidAt, &record.PaidBy, &record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	return record, err
}

// GetByEmployeeAndPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.PaymentRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payment_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period = $2
	`

	record, err := scanPayment(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PaymentRecord{}, payroll.ErrPaymentNotFound
		}
		return payroll.PaymentRecord{}, fmt.Errorf("failed to get payment record for employee %s in %s: %w", employeeID, period, err)
	}

	return record, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListByPeriod(ctx context.Context, period string) ([]payroll.PaymentRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM payment_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period = $1
		ORDER BY e.first_name, e.last_name
	`

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment records for %s: %w", period, err)
	}
	defer rows.Close()

	var records []payroll.PaymentRecord
	for rows.Next() {
		record, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// MarkPaid implements payroll.PayrollRepository. The (employee, period) pair
// is unique; re-marking updates the existing row.
func (p *payrollRepositoryImpl) MarkPaid(ctx context.Context, record payroll.PaymentRecord) (payroll.PaymentRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		WITH upserted AS (
			INSERT INTO payment_records (id, employee_id, period, paid, amount, paid_at, paid_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id, period) DO UPDATE
			SET paid = EXCLUDED.paid,
				amount = EXCLUDED.amount,
				paid_at = EXCLUDED.paid_at,
				paid_by = EXCLUDED.paid_by,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + paymentColumns + `
		FROM upserted p
		JOIN employees e ON e.id = p.employee_id
	`

	saved, err := scanPayment(q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID, record.Period, record.Paid, record.Amount, record.PaidAt, record.PaidBy,
	))
	if err != nil {
		return payroll.PaymentRecord{}, fmt.Errorf("failed to mark period %s paid for employee %s: %w", record.Period, record.EmployeeID, err)
	}

	return saved, nil
}
