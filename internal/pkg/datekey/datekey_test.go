package datekey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CanonicalKeyIsIdentity(t *testing.T) {
	t.Parallel()

	keys := []string{"2024-02-29", "2023-01-01", "1999-12-31", "2024-03-15"}
	for _, key := range keys {
		assert.Equal(t, key, Normalize(key))
		// Idempotence: normalizing a normalized key changes nothing.
		assert.Equal(t, key, Normalize(Normalize(key)))
	}
}

func TestNormalize_EpochMilliseconds(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	want := instant.In(Location()).Format(DayKeyLayout)

	assert.Equal(t, want, Normalize(instant.UnixMilli()))
	assert.Equal(t, want, Normalize(float64(instant.UnixMilli())))
}

func TestNormalize_EpochSeconds(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	want := instant.In(Location()).Format(DayKeyLayout)

	// 10 digits, below the millisecond threshold.
	assert.Equal(t, want, Normalize(instant.Unix()))
	assert.Equal(t, want, Normalize("1710504000"))
}

func TestNormalize_NumericStringMilliseconds(t *testing.T) {
	t.Parallel()

	instant := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	want := instant.In(Location()).Format(DayKeyLayout)

	// 13 digits, at or above the millisecond threshold.
	assert.Equal(t, want, Normalize("1710504000000"))
}

func TestNormalize_ParseableDateStrings(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"2024-03-15T10:30:00Z": "2024-03-15",
		"2024/03/15":           "2024-03-15",
		"15/03/2024":           "2024-03-15",
		"Mar 15, 2024":         "2024-03-15",
		"March 15, 2024":       "2024-03-15",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestNormalize_FailureIsSilent(t *testing.T) {
	t.Parallel()

	// Unparseable strings pass through unchanged.
	assert.Equal(t, "not a date", Normalize("not a date"))
	// Non-string garbage degrades to the unknown-date sentinel.
	assert.Equal(t, "", Normalize(nil))
	assert.Equal(t, "", Normalize(struct{}{}))
	assert.Equal(t, "", Normalize(time.Time{}))
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	year, month, err := ParsePeriod("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)

	_, _, err = ParsePeriod("2024-2")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, _, err = ParsePeriod("02-2024")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestPeriodKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03", PeriodOf("2024-03-15"))
	assert.Equal(t, "", PeriodOf("garbage"))
	assert.Equal(t, "2024-02", Period(2024, time.February))
}
