package main

import (
	"fmt"
	"strings"
	"time"
)

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// importanceMarks renders an importance rating of 1-5 as filled and empty
// marks, with an ASCII fallback.
func importanceMarks(importance int, unicode bool) string {
	if importance < 0 {
		importance = 0
	}
	if importance > 5 {
		importance = 5
	}

	filled, empty := "*", "."
	if unicode {
		filled, empty = "★", "☆"
	}

	return strings.Repeat(filled, importance) + strings.Repeat(empty, 5-importance)
}

func lessonsSummary(done, total int) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", done, total)
}
