package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyShift(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ShiftMorning, ClassifyShift("morning"))
	assert.Equal(t, ShiftEvening, ClassifyShift("evening"))
	assert.Equal(t, ShiftDouble, ClassifyShift("double"))
	assert.Equal(t, ShiftRest, ClassifyShift("rest"))

	// Unrecognized labels degrade to rest instead of failing.
	assert.Equal(t, ShiftRest, ClassifyShift(""))
	assert.Equal(t, ShiftRest, ClassifyShift("night"))
	assert.Equal(t, ShiftRest, ClassifyShift("MORNING"))
}

func TestShiftTypeHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, ShiftMorning.Hours())
	assert.Equal(t, 9, ShiftEvening.Hours())
	assert.Equal(t, 18, ShiftDouble.Hours())
	assert.Equal(t, 0, ShiftRest.Hours())
	assert.Equal(t, 0, ShiftType("whatever").Hours())
}

func TestShiftTypeFlags(t *testing.T) {
	t.Parallel()

	assert.True(t, ShiftMorning.IsSingle())
	assert.True(t, ShiftEvening.IsSingle())
	assert.True(t, ShiftDouble.IsDouble())
	assert.True(t, ShiftRest.IsRest())

	assert.False(t, ShiftDouble.IsSingle())
	assert.False(t, ShiftMorning.IsRest())
}
