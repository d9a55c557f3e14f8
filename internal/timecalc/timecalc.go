// Package timecalc provides pure arithmetic over daily minute budgets
// and the calendar date strings the rest of the system is keyed by.
package timecalc

import (
	"fmt"
	"time"
)

// MinutesPerDay is the hard ceiling for a single day's required time.
const MinutesPerDay = 1440

// DateLayout is the canonical "YYYY-MM-DD" form used for override keys
// and aggregation windows.
const DateLayout = "2006-01-02"

// ToMinutes converts an hour/minute pair to total minutes. It performs
// no range checking; that is the strict validator's job.
func ToMinutes(hours, minutes int) int {
	return hours*60 + minutes
}

// ValidateTotal checks the one-day ceiling. It returns an empty string
// when total fits within a day, otherwise a human-readable message
// naming the offending total.
func ValidateTotal(total int) string {
	if total > MinutesPerDay {
		return fmt.Sprintf("total %d min exceeds one day (%d min)", total, MinutesPerDay)
	}
	return ""
}

// FreeMinutes returns the minutes left in a day after total required
// minutes. Callers must have validated total first; an over-budget
// total yields a negative result that downstream treats as an error
// state, never a displayable figure.
func FreeMinutes(total int) int {
	return MinutesPerDay - total
}

// FormatMinutes renders minutes as "XhYm", e.g. 90 -> "1h30m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

// FormatDate renders t as "YYYY-MM-DD" in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LastNDates returns the n dates ending at now, most recent first and
// including now's own date.
func LastNDates(now time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, FormatDate(now.AddDate(0, 0, -i)))
	}
	return dates
}
