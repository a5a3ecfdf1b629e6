package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/payroll"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/roster"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	now          func() time.Time
}

// NewPayrollService builds the payroll service. The clock is injected the
// same way as in the schedule service; pass nil for the wall clock.
func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	now func() time.Time,
) payroll.PayrollService {
	if now == nil {
		now = time.Now
	}
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		now:          now,
	}
}

// Helper to get user_id from JWT context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	return userID, nil
}

// PaidStatus derives the paid/unpaid map for a period. Every active
// employee appears in the map; employees without a payment record default
// to unpaid.
func (s *PayrollServiceImpl) PaidStatus(ctx context.Context, period string) (payroll.PaidStatusResponse, error) {
	if !datekey.IsPeriod(period) {
		return payroll.PaidStatusResponse{}, payroll.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Status: string(employee.StatusActive)})
	if err != nil {
		return payroll.PaidStatusResponse{}, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return payroll.PaidStatusResponse{}, err
	}

	status := make(map[string]bool, len(employees))
	for _, emp := range employees {
		status[emp.ID] = false
	}
	for _, record := range records {
		if record.Paid {
			status[record.EmployeeID] = true
		}
	}

	return payroll.PaidStatusResponse{
		Period: period,
		Status: status,
	}, nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (payroll.PaymentRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PaymentRecordResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PaymentRecordResponse{}, err
	}

	existing, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err == nil && existing.Paid {
		return payroll.PaymentRecordResponse{}, payroll.ErrAlreadyPaid
	} else if err != nil && !errors.Is(err, payroll.ErrPaymentNotFound) {
		return payroll.PaymentRecordResponse{}, err
	}

	amount := req.Amount
	if amount == nil {
		// The authoritative amount is hours worked times the hourly rate,
		// not the flat list preview.
		computed, err := s.estimatedAmount(ctx, emp, req.Period)
		if err != nil {
			return payroll.PaymentRecordResponse{}, err
		}
		amount = &computed
	}

	userID, _ := getUserIDFromContext(ctx)
	paidAt := s.now()

	record := payroll.PaymentRecord{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Paid:       true,
		Amount:     amount,
		PaidAt:     &paidAt,
	}
	if userID != "" {
		record.PaidBy = &userID
	}

	saved, err := s.payrollRepo.MarkPaid(ctx, record)
	if err != nil {
		return payroll.PaymentRecordResponse{}, err
	}

	return toRecordResponse(saved), nil
}

// PayslipPDF renders the monthly payslip for one employee.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, employeeID, period string) ([]byte, error) {
	if !datekey.IsPeriod(period) {
		return nil, payroll.ErrInvalidPeriod
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, payroll.ErrEmployeeNotFound
		}
		return nil, err
	}

	stats, err := s.monthlyStats(ctx, emp, period)
	if err != nil {
		return nil, err
	}

	paid := "unpaid"
	amount := stats.EstimatedAmount
	if record, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, employeeID, period); err == nil {
		if record.Paid {
			paid = "paid"
		}
		if record.Amount != nil {
			amount = *record.Amount
		}
	} else if !errors.Is(err, payroll.ErrPaymentNotFound) {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.FullName()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s (%s)", period, paid))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Worked days: %d", stats.WorkedDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Off days: %d", stats.OffDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total hours: %d", stats.TotalHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %s TND", amount.StringFixed(3)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PayrollServiceImpl) estimatedAmount(ctx context.Context, emp employee.Employee, period string) (decimal.Decimal, error) {
	stats, err := s.monthlyStats(ctx, emp, period)
	if err != nil {
		return decimal.Zero, err
	}
	return stats.EstimatedAmount, nil
}

func (s *PayrollServiceImpl) monthlyStats(ctx context.Context, emp employee.Employee, period string) (roster.MonthlyStats, error) {
	year, month, err := datekey.ParsePeriod(period)
	if err != nil {
		return roster.MonthlyStats{}, payroll.ErrInvalidPeriod
	}

	entries, err := s.scheduleRepo.ListEntries(ctx, schedule.EntryFilter{
		EmployeeID: emp.ID,
		Period:     period,
	})
	if err != nil {
		return roster.MonthlyStats{}, err
	}

	return roster.ComputeMonthlyStats(emp, entries, year, month), nil
}

func toRecordResponse(record payroll.PaymentRecord) payroll.PaymentRecordResponse {
	resp := payroll.PaymentRecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Period:       record.Period,
		Paid:         record.Paid,
		Amount:       record.Amount,
	}
	if record.PaidAt != nil {
		paidAt := record.PaidAt.In(datekey.Location()).Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
