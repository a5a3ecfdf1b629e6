package roster

import (
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

// Flat penalty rates applied to the staff-list salary preview.
var (
	infractionPenalty = decimal.NewFromInt(15)
	latenessPenalty   = decimal.NewFromInt(15)
	absencePenalty    = decimal.NewFromInt(10)
)

// MonthlyStats are the per-employee monthly figures shown in the calendar
// detail view. Derived, never persisted; no cross-month state is kept.
type MonthlyStats struct {
	WorkedDays            int
	OffDays               int
	TotalHours            int
	EstimatedAmount       decimal.Decimal
	JustifiedAbsences     int
	UnjustifiedAbsences   int
	AbsencesWithoutNotice int
	LateCount             int
	InfractionCount       int
}

// ComputeMonthlyStats folds one employee's shift entries, restricted to the
// target month, plus the employee's counters into monthly totals. Entries
// outside the month are skipped, so callers may pass unfiltered sets.
func ComputeMonthlyStats(emp employee.Employee, entries []schedule.Entry, year int, month time.Month) MonthlyStats {
	period := datekey.Period(year, month)

	var singles, doubles int
	for _, entry := range entries {
		if datekey.PeriodOf(entry.Date) != period {
			continue
		}
		switch {
		case entry.Shift.IsDouble():
			doubles++
		case entry.Shift.IsSingle():
			singles++
		}
	}

	days := datekey.DaysInMonth(year, month)
	worked := singles + doubles
	hours := singles*schedule.SingleShiftHours + doubles*schedule.DoubleShiftHours

	estimated := orZero(emp.HourlyRate).
		Mul(decimal.NewFromInt(int64(hours))).
		Add(orZero(emp.Bonus)).
		Sub(orZero(emp.Advance))

	return MonthlyStats{
		WorkedDays:      worked,
		OffDays:         days - worked,
		TotalHours:      hours,
		EstimatedAmount: estimated,
		// The 60/40/20 splits overlap and do not partition the absence
		// total. Kept as-is to match what the dashboard has always shown.
		// TODO: revisit once product decides how absences should be
		// categorized.
		JustifiedAbsences:     emp.AbsenceCount * 6 / 10,
		UnjustifiedAbsences:   (emp.AbsenceCount*4 + 9) / 10,
		AbsencesWithoutNotice: emp.AbsenceCount * 2 / 10,
		LateCount:             emp.LatenessCount,
		InfractionCount:       emp.InfractionCount,
	}
}

// Penalties is the flat deduction shown on the staff list: 15 per
// infraction, 15 per lateness, 10 per absence.
func Penalties(infractions, lateness, absences int) decimal.Decimal {
	return infractionPenalty.Mul(decimal.NewFromInt(int64(infractions))).
		Add(latenessPenalty.Mul(decimal.NewFromInt(int64(lateness)))).
		Add(absencePenalty.Mul(decimal.NewFromInt(int64(absences))))
}

// NetSalaryPreview is the list-view estimate: base salary plus bonus minus
// advance minus flat penalties. It is intentionally a different figure from
// the hours-based EstimatedAmount shown in the calendar detail; the actual
// payment is computed from hours times rate when a salary is marked paid.
func NetSalaryPreview(emp employee.Employee) decimal.Decimal {
	return orZero(emp.BaseSalary).
		Add(orZero(emp.Bonus)).
		Sub(orZero(emp.Advance)).
		Sub(Penalties(emp.InfractionCount, emp.LatenessCount, emp.AbsenceCount))
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
