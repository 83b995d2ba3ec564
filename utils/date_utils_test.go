package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2026-08-30")
	require.True(t, ok)
	require.Equal(t, 2026, parsed.Year())
	require.Equal(t, time.August, parsed.Month())
	require.Equal(t, 30, parsed.Day())

	parsed, ok = ParseDate("2026-08-30T14:30:00Z")
	require.True(t, ok)
	require.Equal(t, 14, parsed.Hour())

	_, ok = ParseDate("")
	require.False(t, ok)

	_, ok = ParseDate("08/30/2026")
	require.False(t, ok)
}

func TestIsValidDate(t *testing.T) {
	require.True(t, IsValidDate("2026-01-15"))
	require.False(t, IsValidDate("yesterday"))
}

func TestStartOfToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)

	now := time.Date(2026, 8, 30, 23, 59, 59, 0, loc)
	midnight := StartOfToday(now)

	require.Equal(t, 0, midnight.Hour())
	require.Equal(t, 0, midnight.Minute())
	require.Equal(t, now.Day(), midnight.Day())
	require.Equal(t, loc, midnight.Location())
}
