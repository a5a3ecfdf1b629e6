package datekey

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout is the canonical calendar-day key used as the join key across
// schedules, payments and display logic.
const DayKeyLayout = "2006-01-02"

// PeriodLayout is the year-month key scoping payroll lookups.
const PeriodLayout = "2006-01"

var ErrInvalidPeriod = errors.New("invalid period, expected YYYY-MM")

var (
	dayKeyRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	periodRegex  = regexp.MustCompile(`^\d{4}-\d{2}$`)
	numericRegex = regexp.MustCompile(`^-?\d+$`)
)

// The restaurants all operate in one zone; day boundaries are computed there.
var location = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Tunis")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Location returns the fixed zone day keys are computed in.
func Location() *time.Location {
	return location
}

// Normalize converts a value of unknown shape (canonical key, epoch number,
// numeric string, parseable date string, time.Time) into a canonical
// YYYY-MM-DD key. It never fails loudly: unparseable strings come back
// unchanged, everything else unparseable becomes the empty string. Callers
// treat the empty string as "unknown date".
func Normalize(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeString(d)
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.In(location).Format(DayKeyLayout)
	case int:
		return fromEpoch(int64(d))
	case int32:
		return fromEpoch(int64(d))
	case int64:
		return fromEpoch(d)
	case float64:
		return fromEpoch(int64(d))
	default:
		return ""
	}
}

func normalizeString(s string) string {
	trimmed := strings.TrimSpace(s)
	if dayKeyRegex.MatchString(trimmed) {
		return trimmed
	}
	if numericRegex.MatchString(trimmed) {
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return s
		}
		return fromEpoch(n)
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, location); err == nil {
			return t.In(location).Format(DayKeyLayout)
		}
	}
	// Unparseable strings pass through so the caller can still render them.
	return s
}

// Layouts the dashboard has historically received from the data layer.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// fromEpoch disambiguates seconds vs. milliseconds by digit count: 12 or
// more digits means milliseconds.
func fromEpoch(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	var t time.Time
	if countDigits(abs) >= 12 {
		t = time.UnixMilli(n)
	} else {
		t = time.Unix(n, 0)
	}
	return t.In(location).Format(DayKeyLayout)
}

func countDigits(n int64) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}

// IsDayKey reports whether s is already a canonical day key.
func IsDayKey(s string) bool {
	return dayKeyRegex.MatchString(s)
}

// IsPeriod reports whether s is a YYYY-MM period key.
func IsPeriod(s string) bool {
	return periodRegex.MatchString(s)
}

// ParsePeriod splits a YYYY-MM period key into its year and month.
func ParsePeriod(period string) (int, time.Month, error) {
	if !periodRegex.MatchString(period) {
		return 0, 0, ErrInvalidPeriod
	}
	t, err := time.ParseInLocation(PeriodLayout, period, location)
	if err != nil {
		return 0, 0, ErrInvalidPeriod
	}
	return t.Year(), t.Month(), nil
}

// PeriodOf truncates a day key to its YYYY-MM period. Non-canonical input
// yields the empty string.
func PeriodOf(dayKey string) string {
	if !dayKeyRegex.MatchString(dayKey) {
		return ""
	}
	return dayKey[:7]
}

// Period formats a year and month as a YYYY-MM key.
func Period(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, location).Format(PeriodLayout)
}

// DayKey formats a calendar day as a canonical key.
func DayKey(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, location).Format(DayKeyLayout)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, location).Day()
}

// Today returns the canonical key of the given instant's calendar day in the
// fixed zone. The instant is injected so callers can pin "today" in tests.
func Today(now time.Time) string {
	return now.In(location).Format(DayKeyLayout)
}
