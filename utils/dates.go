package utils

import "time"

// DayStart truncates a time to local midnight. All date bucketing in the
// aggregation pipeline goes through this.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether two times fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GestationalWeekFromDueDate derives the current week from the expected
// delivery date, assuming a 40-week pregnancy, clamped to [1, 40].
func GestationalWeekFromDueDate(dueDate, now time.Time) int {
	weeksUntilDue := int(dueDate.Sub(now).Hours() / (24 * 7))
	week := 40 - weeksUntilDue
	if week < 1 {
		return 1
	}
	if week > 40 {
		return 40
	}
	return week
}

// TrimesterForWeek is a step function over the fixed week partition:
// weeks 1-13 are trimester 1, 14-27 trimester 2, 28 and above trimester 3.
func TrimesterForWeek(week int) int {
	if week <= 13 {
		return 1
	}
	if week <= 27 {
		return 2
	}
	return 3
}

func TrimesterLabel(week int) string {
	switch TrimesterForWeek(week) {
	case 1:
		return "First Trimester"
	case 2:
		return "Second Trimester"
	}
	return "Third Trimester"
}
