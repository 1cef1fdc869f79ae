package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInIST(t *testing.T) {
	parsed, err := ParseInIST(DateLayout, "2025-06-15")
	require.NoError(t, err)

	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	_, offset := parsed.Zone()
	assert.Equal(t, 5*3600+30*60, offset)

	_, err = ParseInIST(DateLayout, "15/06/2025")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	// 20:00 UTC is already the next day in IST (+5:30)
	utc := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	start := StartOfDay(utc)
	assert.Equal(t, 11, start.Day())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())

	end := EndOfDay(utc)
	assert.Equal(t, 11, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, start.Before(end))
}

func TestToIST(t *testing.T) {
	utc := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ist := ToIST(utc)
	assert.Equal(t, 5, ist.Hour())
	assert.Equal(t, 30, ist.Minute())
	assert.True(t, utc.Equal(ist))
}
