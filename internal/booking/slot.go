package booking

import (
	"fmt"
	"time"
)

// ParseClock parses a zero-padded HH:MM string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockFormat, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SlotEnd computes the exclusive end clock for a slot starting at startTime
// and running durationHours whole hours. The end may not pass midnight.
func SlotEnd(startTime string, durationHours int) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	if durationHours < 1 {
		return "", fmt.Errorf("duration must be at least one hour")
	}

	end := start + durationHours*60
	if end > 24*60 {
		return "", fmt.Errorf("slot may not run past midnight")
	}
	return FormatClock(end), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Zero-padded HH:MM strings order
// lexicographically, so plain string comparison is exact. A slot ending at
// 12:00 does not overlap one starting at 12:00.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}
