package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "period", Message: "must be YYYY-MM"},
		{Field: "shift", Message: "is required"},
	}

	assert.Equal(t, "period: must be YYYY-MM; shift: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"period": "must be YYYY-MM",
		"shift":  "is required",
	}, errs.ToMap())
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)
	_, ok = IsValidDate("29/02/2024")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidTimeOfDay("09:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:00"))
	assert.False(t, IsValidTimeOfDay("09:60"))
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("a"))
}
