package roster

import (
	"testing"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDay(t *testing.T) {
	t.Parallel()

	today := "2024-03-15"

	assert.Equal(t, DayPast, ClassifyDay("2024-03-14", today))
	assert.Equal(t, DayCurrent, ClassifyDay("2024-03-15", today))
	assert.Equal(t, DayFuture, ClassifyDay("2024-03-16", today))

	// Across month and year boundaries too.
	assert.Equal(t, DayPast, ClassifyDay("2023-12-31", today))
	assert.Equal(t, DayFuture, ClassifyDay("2025-01-01", today))
}

func TestClassifyDay_InjectedClock(t *testing.T) {
	t.Parallel()

	// "Today" comes from an injected instant, not from the wall clock.
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, datekey.Location())
	assert.Equal(t, DayCurrent, ClassifyDay("2024-03-15", datekey.Today(now)))
}

func TestWorkStatus_PastDerivesFromWorkedFlag(t *testing.T) {
	t.Parallel()

	label, tone := WorkStatus(DayPast, true, false)
	assert.Equal(t, WorkStatusWorked, label)
	assert.Equal(t, "success", tone)

	label, tone = WorkStatus(DayPast, false, true)
	assert.Equal(t, WorkStatusMissed, label)
	assert.Equal(t, "danger", tone)
}

func TestWorkStatus_CurrentDerivesFromWorkingFlag(t *testing.T) {
	t.Parallel()

	label, tone := WorkStatus(DayCurrent, false, true)
	assert.Equal(t, WorkStatusWorking, label)
	assert.Equal(t, "active", tone)

	label, tone = WorkStatus(DayCurrent, true, false)
	assert.Equal(t, WorkStatusScheduled, label)
	assert.Equal(t, "pending", tone)
}

func TestWorkStatus_FutureIsAlwaysEmpty(t *testing.T) {
	t.Parallel()

	// Future days ignore both flags entirely.
	for _, worked := range []bool{true, false} {
		for _, working := range []bool{true, false} {
			label, tone := WorkStatus(DayFuture, worked, working)
			assert.Equal(t, WorkStatusUnknown, label)
			assert.Empty(t, tone)
		}
	}
}
