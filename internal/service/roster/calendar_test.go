package roster

import (
	"testing"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadingBlanks(t *testing.T) {
	t.Parallel()

	// Feb 2024 starts on a Thursday: three blanks before it, Monday-first.
	assert.Equal(t, 3, LeadingBlanks(2024, time.February))
	// Feb 2023 starts on a Wednesday.
	assert.Equal(t, 2, LeadingBlanks(2023, time.February))
	// Jan 2024 starts on a Monday: no blanks.
	assert.Equal(t, 0, LeadingBlanks(2024, time.January))
	// Sep 2024 starts on a Sunday, the last column.
	assert.Equal(t, 6, LeadingBlanks(2024, time.September))
}

func TestMonthGrid_Length(t *testing.T) {
	t.Parallel()

	// Grid length is always leading blanks + days in month, with no
	// trailing padding, for every month across leap and non-leap years.
	for _, year := range []int{2023, 2024} {
		for m := time.January; m <= time.December; m++ {
			cells := MonthGrid(year, m, nil)
			want := LeadingBlanks(year, m) + datekey.DaysInMonth(year, m)
			assert.Len(t, cells, want, "%d-%02d", year, m)
		}
	}

	// Feb 2024 = 3 + 29, Feb 2023 = 2 + 28.
	assert.Len(t, MonthGrid(2024, time.February, nil), 32)
	assert.Len(t, MonthGrid(2023, time.February, nil), 30)
}

func TestMonthGrid_BlanksThenDays(t *testing.T) {
	t.Parallel()

	cells := MonthGrid(2024, time.February, nil)

	for i := 0; i < 3; i++ {
		assert.Zero(t, cells[i].Day)
		assert.Empty(t, cells[i].Date)
	}
	assert.Equal(t, 1, cells[3].Day)
	assert.Equal(t, "2024-02-01", cells[3].Date)
	assert.Equal(t, 29, cells[len(cells)-1].Day)
	assert.Equal(t, "2024-02-29", cells[len(cells)-1].Date)
}

func TestMonthGrid_MatchesEntriesByDayKey(t *testing.T) {
	t.Parallel()

	entries := []schedule.Entry{
		{Date: "2024-02-01", Shift: schedule.ShiftMorning},
		{Date: "2024-02-29", Shift: schedule.ShiftDouble},
		{Date: "2024-03-01", Shift: schedule.ShiftEvening}, // outside month
	}
	cells := MonthGrid(2024, time.February, entries)

	require.NotNil(t, cells[3].Entry)
	assert.Equal(t, schedule.ShiftMorning, cells[3].Entry.Shift)

	last := cells[len(cells)-1]
	require.NotNil(t, last.Entry)
	assert.Equal(t, schedule.ShiftDouble, last.Entry.Shift)

	// Day 2 has no assignment.
	assert.Nil(t, cells[4].Entry)
}
