package timeacct

import (
	"fmt"
	"time"
)

// MinutesBetween returns the whole minutes from a to b, truncated toward
// zero. Seconds and fractions of a second are dropped, never rounded up.
func MinutesBetween(a, b time.Time) int64 {
	return int64(b.Sub(a) / time.Minute)
}

// FormatMinutes renders a minute count as H:MM, e.g. 125 -> "2:05".
func FormatMinutes(minutes int64) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
