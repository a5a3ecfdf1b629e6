package roster

import (
	"fmt"
	"testing"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func entriesFor(period string, shifts ...schedule.ShiftType) []schedule.Entry {
	entries := make([]schedule.Entry, 0, len(shifts))
	for i, s := range shifts {
		entries = append(entries, schedule.Entry{
			Date:  fmt.Sprintf("%s-%02d", period, i+1),
			Shift: s,
		})
	}
	return entries
}

func TestComputeMonthlyStats_HoursAndDays(t *testing.T) {
	t.Parallel()

	// 5 single shifts and 2 doubles: 5*9 + 2*18 = 81 hours.
	entries := entriesFor("2024-03",
		schedule.ShiftMorning, schedule.ShiftEvening, schedule.ShiftMorning,
		schedule.ShiftMorning, schedule.ShiftEvening,
		schedule.ShiftDouble, schedule.ShiftDouble,
		schedule.ShiftRest,
	)

	stats := ComputeMonthlyStats(employee.Employee{}, entries, 2024, time.March)

	assert.Equal(t, 7, stats.WorkedDays)
	assert.Equal(t, 24, stats.OffDays) // 31 - 7
	assert.Equal(t, 81, stats.TotalHours)
	assert.Equal(t, datekey.DaysInMonth(2024, time.March), stats.WorkedDays+stats.OffDays)
}

func TestComputeMonthlyStats_WorkedPlusOffAlwaysCoversMonth(t *testing.T) {
	t.Parallel()

	for m := time.January; m <= time.December; m++ {
		stats := ComputeMonthlyStats(employee.Employee{}, entriesFor(datekey.Period(2024, m), schedule.ShiftMorning, schedule.ShiftDouble), 2024, m)
		assert.Equal(t, datekey.DaysInMonth(2024, m), stats.WorkedDays+stats.OffDays, "month %s", m)
	}
}

func TestComputeMonthlyStats_IgnoresOtherMonths(t *testing.T) {
	t.Parallel()

	entries := []schedule.Entry{
		{Date: "2024-03-01", Shift: schedule.ShiftMorning},
		{Date: "2024-02-29", Shift: schedule.ShiftDouble},
		{Date: "2024-04-01", Shift: schedule.ShiftDouble},
		{Date: "", Shift: schedule.ShiftMorning}, // unknown date
	}

	stats := ComputeMonthlyStats(employee.Employee{}, entries, 2024, time.March)

	assert.Equal(t, 1, stats.WorkedDays)
	assert.Equal(t, 9, stats.TotalHours)
}

func TestComputeMonthlyStats_EstimatedAmount(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		HourlyRate: dec(10),
		Bonus:      dec(50),
		Advance:    dec(20),
	}
	// 2 singles + 1 double = 36 hours; 36*10 + 50 - 20 = 390.
	entries := entriesFor("2024-03", schedule.ShiftMorning, schedule.ShiftEvening, schedule.ShiftDouble)

	stats := ComputeMonthlyStats(emp, entries, 2024, time.March)

	assert.True(t, stats.EstimatedAmount.Equal(decimal.NewFromInt(390)), "got %s", stats.EstimatedAmount)
}

func TestComputeMonthlyStats_MissingNumericFieldsAreZero(t *testing.T) {
	t.Parallel()

	stats := ComputeMonthlyStats(employee.Employee{}, entriesFor("2024-03", schedule.ShiftDouble), 2024, time.March)

	assert.True(t, stats.EstimatedAmount.IsZero())
}

func TestComputeMonthlyStats_AbsenceSplits(t *testing.T) {
	t.Parallel()

	// absence=3: justified floor(1.8)=1, unjustified ceil(1.2)=2, without
	// notice floor(0.6)=0. The categories overlap; that is the shipped
	// behavior.
	stats := ComputeMonthlyStats(employee.Employee{AbsenceCount: 3, LatenessCount: 4, InfractionCount: 5}, nil, 2024, time.March)

	assert.Equal(t, 1, stats.JustifiedAbsences)
	assert.Equal(t, 2, stats.UnjustifiedAbsences)
	assert.Equal(t, 0, stats.AbsencesWithoutNotice)
	assert.Equal(t, 4, stats.LateCount)
	assert.Equal(t, 5, stats.InfractionCount)

	// absence=10 splits 6 / 4 / 2.
	stats = ComputeMonthlyStats(employee.Employee{AbsenceCount: 10}, nil, 2024, time.March)
	assert.Equal(t, 6, stats.JustifiedAbsences)
	assert.Equal(t, 4, stats.UnjustifiedAbsences)
	assert.Equal(t, 2, stats.AbsencesWithoutNotice)
}

func TestPenalties(t *testing.T) {
	t.Parallel()

	// 2 infractions + 1 lateness + 3 absences = 2*15 + 1*15 + 3*10 = 75.
	assert.True(t, Penalties(2, 1, 3).Equal(decimal.NewFromInt(75)))
	assert.True(t, Penalties(0, 0, 0).IsZero())
}

func TestNetSalaryPreview(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{
		BaseSalary:      dec(1000),
		Bonus:           dec(50),
		Advance:         dec(20),
		InfractionCount: 2,
		LatenessCount:   1,
		AbsenceCount:    3,
	}

	// 1000 + 50 - 20 - 75 = 955.
	assert.True(t, NetSalaryPreview(emp).Equal(decimal.NewFromInt(955)), "got %s", NetSalaryPreview(emp))
}

func TestNetSalaryPreview_MissingFieldsAreZero(t *testing.T) {
	t.Parallel()

	assert.True(t, NetSalaryPreview(employee.Employee{}).IsZero())
}
