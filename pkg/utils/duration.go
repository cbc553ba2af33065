package utils

import (
	"fmt"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// HumanDuration formats the time between start and end like
// "1 hour 2 minutes 3 seconds". Zero parts are omitted.
// If end is nil, now is used instead.
// Returns an empty string if start is nil.
func HumanDuration(start, end *metav1.Time, now time.Time) string {
	if start == nil || start.IsZero() {
		return ""
	}
	until := now
	if end != nil && !end.IsZero() {
		until = end.Time
	}
	return FormatDuration(until.Sub(start.Time))
}

// FormatDuration formats d with second precision like
// "1 hour 2 minutes 3 seconds". Negative durations are treated as zero.
func FormatDuration(d time.Duration) string {
	seconds := int64(d.Truncate(time.Second) / time.Second)
	if seconds <= 0 {
		return "0 seconds"
	}
	parts := []string{}
	for _, unit := range []struct {
		name    string
		seconds int64
	}{
		{"day", 24 * 60 * 60},
		{"hour", 60 * 60},
		{"minute", 60},
		{"second", 1},
	} {
		n := seconds / unit.seconds
		seconds %= unit.seconds
		if n == 0 {
			continue
		}
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit.name))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit.name))
		}
	}
	return strings.Join(parts, " ")
}

// IsZeroDuration returns true if duration is nil or duration is zero seconds
func IsZeroDuration(d *metav1.Duration) bool {
	return d == nil || d.Truncate(time.Second) == 0
}
