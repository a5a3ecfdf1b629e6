// Package roster holds the pure derived-data computations behind the
// schedule and payroll views: the month calendar grid, day status
// classification and the monthly attendance/pay aggregation. Everything here
// is deterministic, does no I/O and is recomputed from scratch per request.
package roster

import (
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
)

// Cell is one slot of the month grid. Day 0 marks a leading alignment
// blank; blank cells carry no date and no entry.
type Cell struct {
	Day   int
	Date  string
	Entry *schedule.Entry
}

// MonthGrid builds the Monday-first grid for a month, matching entries to
// their days by canonical key. Grid length is leading blanks plus days in
// the month; no trailing padding is added, so the final row may be partial
// and renderers must tolerate that.
func MonthGrid(year int, month time.Month, entries []schedule.Entry) []Cell {
	byDay := make(map[string]*schedule.Entry, len(entries))
	for i := range entries {
		byDay[entries[i].Date] = &entries[i]
	}

	blanks := LeadingBlanks(year, month)
	days := datekey.DaysInMonth(year, month)

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		key := datekey.DayKey(year, month, day)
		cells = append(cells, Cell{Day: day, Date: key, Entry: byDay[key]})
	}
	return cells
}

// LeadingBlanks returns how many blank cells precede day 1 so that it lands
// in its weekday column, weeks starting Monday.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, datekey.Location())
	return (int(first.Weekday()) + 6) % 7
}
