package twsfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampCompactDash(t *testing.T) {
	got, err := ParseTimestamp("20240101-00:00:00")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 0, got.Hour())
}

func TestParseTimestampCompactSpace(t *testing.T) {
	got, err := ParseTimestamp("20240315 09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 3, int(got.Month()))
	assert.Equal(t, 9, got.Hour())
}

func TestParseTimestampRFC3339(t *testing.T) {
	got, err := ParseTimestamp("2024-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseTimestampLegacyZone(t *testing.T) {
	got, err := ParseTimestamp("20240101 12:00:00 MEZ")
	require.NoError(t, err)
	assert.Equal(t, 11, got.UTC().Hour())
}

func TestParseTimestampIANAZone(t *testing.T) {
	got, err := ParseTimestamp("20240101 12:00:00 Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseTimestampEpochSeconds(t *testing.T) {
	got, err := ParseTimestamp("1704067200")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseTimestampEpochMillis(t *testing.T) {
	got, err := ParseTimestamp("1704067200000")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseTimestampEpochNanos(t *testing.T) {
	got, err := ParseTimestamp("1704067200000000000")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseTimestampAmbiguousFails(t *testing.T) {
	_, err := ParseTimestamp("not-a-timestamp")
	require.Error(t, err)
}

func TestAccountUpdateTime(t *testing.T) {
	got, err := AccountUpdateTime("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13, got.Hour())
	assert.Equal(t, 45, got.Minute())
}
