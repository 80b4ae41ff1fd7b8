package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatDuration renders whole days, hours and minutes of the given number of
// seconds, e.g. 3661 -> "1 hours 1 mins". Zero components are omitted and
// "0m" is returned when nothing is left to show.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	hours := seconds / secondsPerHour
	seconds %= secondsPerHour
	minutes := seconds / secondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d mins", minutes))
	}
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// Countdown returns the number of whole seconds left until end, never negative.
func Countdown(end, now time.Time) int64 {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int64(remaining / time.Second)
}

// GetTimeframeStart converts a timeframe filter value into the earliest
// timestamp that still matches it. Zero time means no lower bound.
func GetTimeframeStart(timeframe string, now time.Time) (time.Time, error) {
	day := 24 * time.Hour
	switch timeframe {
	case "", "all":
		return time.Time{}, nil
	case "1d":
		return now.Add(-day), nil
	case "7d":
		return now.Add(-7 * day), nil
	case "30d":
		return now.Add(-30 * day), nil
	default:
		return time.Time{}, fmt.Errorf("invalid timeframe: %s", timeframe)
	}
}

// UnixMilli converts contract seconds into the millisecond timestamps exposed by the API.
func UnixMilli(seconds int64) int64 {
	return seconds * 1000
}
