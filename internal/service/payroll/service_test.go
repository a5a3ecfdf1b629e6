package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/payroll"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubPayrollRepo struct {
	payroll.PayrollRepository
	records []payroll.PaymentRecord
	marked  *payroll.PaymentRecord
}

func (s *stubPayrollRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.PaymentRecord, error) {
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.Period == period {
			return r, nil
		}
	}
	return payroll.PaymentRecord{}, payroll.ErrPaymentNotFound
}

func (s *stubPayrollRepo) ListByPeriod(ctx context.Context, period string) ([]payroll.PaymentRecord, error) {
	return s.records, nil
}

func (s *stubPayrollRepo) MarkPaid(ctx context.Context, record payroll.PaymentRecord) (payroll.PaymentRecord, error) {
	record.ID = "rec-1"
	s.marked = &record
	return record, nil
}

type stubScheduleRepo struct {
	schedule.ScheduleRepository
	entries []schedule.Entry
}

func (s *stubScheduleRepo) ListEntries(ctx context.Context, filter schedule.EntryFilter) ([]schedule.Entry, error) {
	return s.entries, nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPaidStatusDefaultsToUnpaid(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a"}, {ID: "emp-b"},
	}}
	payRepo := &stubPayrollRepo{records: []payroll.PaymentRecord{
		{EmployeeID: "emp-a", Period: "2024-03", Paid: true},
	}}

	svc := NewPayrollService(nil, payRepo, empRepo, &stubScheduleRepo{}, fixedClock)

	status, err := svc.PaidStatus(context.Background(), "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", status.Period)
	assert.True(t, status.Status["emp-a"])
	assert.False(t, status.Status["emp-b"])
	assert.Len(t, status.Status, 2)
}

func TestPaidStatusRejectsBadPeriod(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(nil, &stubPayrollRepo{}, &stubEmployeeRepo{}, &stubScheduleRepo{}, fixedClock)

	_, err := svc.PaidStatus(context.Background(), "March 2024")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestMarkPaidComputesAmountFromHours(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", HourlyRate: dec("10")},
	}}
	payRepo := &stubPayrollRepo{}
	schedRepo := &stubScheduleRepo{entries: []schedule.Entry{
		{Date: "2024-03-04", Shift: schedule.ShiftMorning, IsWorked: true},
		{Date: "2024-03-05", Shift: schedule.ShiftDouble, IsWorked: true},
	}}

	svc := NewPayrollService(nil, payRepo, empRepo, schedRepo, fixedClock)

	record, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{
		EmployeeID: "emp-a",
		Period:     "2024-03",
	})
	require.NoError(t, err)

	// 9h single + 18h double at 10/h.
	require.NotNil(t, record.Amount)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(270)), "got %s", record.Amount)
	assert.True(t, record.Paid)
	require.NotNil(t, payRepo.marked)
	assert.Equal(t, "2024-03", payRepo.marked.Period)
}

func TestMarkPaidTwiceConflicts(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: []employee.Employee{{ID: "emp-a"}}}
	payRepo := &stubPayrollRepo{records: []payroll.PaymentRecord{
		{EmployeeID: "emp-a", Period: "2024-03", Paid: true},
	}}

	svc := NewPayrollService(nil, payRepo, empRepo, &stubScheduleRepo{}, fixedClock)

	_, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{
		EmployeeID: "emp-a",
		Period:     "2024-03",
	})
	assert.ErrorIs(t, err, payroll.ErrAlreadyPaid)
}

func TestMarkPaidUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(nil, &stubPayrollRepo{}, &stubEmployeeRepo{}, &stubScheduleRepo{}, fixedClock)

	_, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{
		EmployeeID: "ghost",
		Period:     "2024-03",
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

func TestPayslipPDFRenders(t *testing.T) {
	t.Parallel()

	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-a", FirstName: "Amine", LastName: "Ben Salah", HourlyRate: dec("8")},
	}}
	schedRepo := &stubScheduleRepo{entries: []schedule.Entry{
		{Date: "2024-03-04", Shift: schedule.ShiftEvening, IsWorked: true},
	}}

	svc := NewPayrollService(nil, &stubPayrollRepo{}, empRepo, schedRepo, fixedClock)

	pdf, err := svc.PayslipPDF(context.Background(), "emp-a", "2024-03")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
