package domain

import (
	"time"

	"github.com/sebuszqo/BudgetTracker/internal/validator"
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(validator.DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(validator.DateLayout)
}

func MonthKey(t time.Time) string {
	return t.Format(validator.MonthLayout)
}

// MonthStart truncates t to the first day of its month, in UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// Today is the calendar date of t as a UTC midnight.
func Today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RecentMonths returns the month starts of ref's month and the n-1 months before it, newest first.
// Months are stepped on the calendar, so every month appears exactly once.
func RecentMonths(ref time.Time, n int) []time.Time {
	start := MonthStart(ref)
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		months[i] = start.AddDate(0, -i, 0)
	}
	return months
}

// BudgetMonthChoices lists the months a budget can be set for: the current one and the 5 before it.
func BudgetMonthChoices(ref time.Time) []string {
	months := RecentMonths(ref, 6)
	keys := make([]string, len(months))
	for i, m := range months {
		keys[i] = MonthKey(m)
	}
	return keys
}
