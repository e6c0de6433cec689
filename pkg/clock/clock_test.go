package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTimeValidation(t *testing.T) {
	c := New()

	require.NoError(t, c.SetTime("12:30:45"))
	assert.Contains(t, c.String(), "12:30:45")

	bad := []string{
		"24:00:00", "12:60:00", "12:00:60", "-1:00:00", "noon", "12:30",
		// Trailing and fractional input must be rejected, not truncated.
		"12:30:45:99", "12:30:45xyz", "12:30:4.5", "12:30:45 ",
	}
	for _, s := range bad {
		assert.Error(t, c.SetTime(s), "SetTime(%q)", s)
	}
	// A failed set leaves the previous time in place.
	assert.Contains(t, c.String(), "12:30:45")
}

func TestSetDateValidation(t *testing.T) {
	c := New()

	require.NoError(t, c.SetDate(15, "January", 2025))
	assert.Contains(t, c.String(), "January 15 2025")

	// Case-insensitive month names.
	require.NoError(t, c.SetDate(3, "march", 2000))

	assert.Error(t, c.SetDate(31, "April", 2025))
	assert.Error(t, c.SetDate(1, "Smarch", 2025))
	assert.Error(t, c.SetDate(1, "January", 1992))
	assert.Error(t, c.SetDate(1, "January", 2036))
	assert.NoError(t, c.SetDate(1, "January", 1993))
	assert.NoError(t, c.SetDate(1, "January", 2035))
}

func TestLeapYearHandling(t *testing.T) {
	c := New()

	require.NoError(t, c.SetDate(29, "February", 2024))
	assert.Error(t, c.SetDate(29, "February", 2023))
	// Century rule: 2000 is a leap year.
	require.NoError(t, c.SetDate(29, "February", 2000))
}

func TestStringIndependentOfWallClock(t *testing.T) {
	c := New()
	require.NoError(t, c.SetTime("12:30:45"))
	require.NoError(t, c.SetDate(15, "January", 2025))
	assert.Equal(t, "12:30:45 January 15 2025", c.String())
}

func TestUptime(t *testing.T) {
	c := New()
	assert.GreaterOrEqual(t, int64(c.Uptime()), int64(0))
}
