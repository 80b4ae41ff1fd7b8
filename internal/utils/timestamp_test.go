package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "0m"},
		{59, "0m"},
		{61, "1 mins"},
		{90, "1 mins"},
		{3600, "1 hours"},
		{3661, "1 hours 1 mins"},
		{86400, "1 days"},
		{90000, "1 days 1 hours"},
		{90060, "1 days 1 hours 1 mins"},
		{172800 + 120, "2 days 2 mins"},
		{-10, "0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestCountdownIsNeverNegative(t *testing.T) {
	requestedAt := time.Unix(1_700_000_000, 0)
	duration := 2 * time.Hour
	end := requestedAt.Add(duration)

	assert.Equal(t, int64(7200), Countdown(end, requestedAt))
	assert.Equal(t, int64(3600), Countdown(end, requestedAt.Add(time.Hour)))
	assert.Equal(t, int64(0), Countdown(end, end))
	assert.Equal(t, int64(0), Countdown(end, end.Add(time.Minute)))

	for offset := -3 * time.Hour; offset <= 3*time.Hour; offset += 17 * time.Minute {
		assert.GreaterOrEqual(t, Countdown(end, requestedAt.Add(offset)), int64(0))
	}
}

func TestGetTimeframeStart(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	start, err := GetTimeframeStart("", now)
	assert.NoError(t, err)
	assert.True(t, start.IsZero())

	start, err = GetTimeframeStart("7d", now)
	assert.NoError(t, err)
	assert.Equal(t, now.Add(-7*24*time.Hour), start)

	_, err = GetTimeframeStart("1y", now)
	assert.Error(t, err)
}
