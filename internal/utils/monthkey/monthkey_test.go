package monthkey_test

import (
	"testing"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/utils/monthkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		date     string
		expected string
	}{
		{"single digit month gets padded", "2025-1", "", "2025-01"},
		{"already canonical key unchanged", "2025-01", "", "2025-01"},
		{"december unchanged", "2024-12", "", "2024-12"},
		{"month takes precedence over date", "2025-3", "2025-04-15", "2025-03"},
		{"full date truncated to key", "", "2025-01-15", "2025-01"},
		{"malformed month passed through", "January 2025", "", "January 2025"},
		{"three part month passed through", "2025-01-15", "", "2025-01-15"},
		{"short date passed through", "", "2025", "2025"},
		{"both empty yields empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthkey.Normalize(tt.month, tt.date))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"2025-1", "2025-01", "2024-12", "1999-9", "garbage", "2025-01-15"}
	for _, in := range inputs {
		once := monthkey.Normalize(in, "")
		twice := monthkey.Normalize(once, "")
		assert.Equal(t, once, twice, "normalize should be idempotent for %q", in)
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01", monthkey.FromTime(ts))
}

func TestPrev(t *testing.T) {
	prev, err := monthkey.Prev("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", prev)

	prev, err = monthkey.Prev("2025-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-06", prev)

	_, err = monthkey.Prev("not-a-key")
	assert.Error(t, err)
}

func TestWindow(t *testing.T) {
	keys, err := monthkey.Window("2025-02", 12)
	require.NoError(t, err)
	require.Len(t, keys, 12)
	assert.Equal(t, "2024-03", keys[0])
	assert.Equal(t, "2025-02", keys[11])

	// Chronologically ascending with no gaps
	for i := 1; i < len(keys); i++ {
		prev, err := monthkey.Prev(keys[i])
		require.NoError(t, err)
		assert.Equal(t, keys[i-1], prev)
	}

	_, err = monthkey.Window("garbage", 12)
	assert.Error(t, err)
}

func TestYear(t *testing.T) {
	year, ok := monthkey.Year("2025-01")
	require.True(t, ok)
	assert.Equal(t, 2025, year)

	_, ok = monthkey.Year("bad")
	assert.False(t, ok)
}
