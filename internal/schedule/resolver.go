// Package schedule decides which day profile governs a calendar date:
// an override if one exists, else the matching template branch, else a
// zero default.
package schedule

import (
	"time"

	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/store"
	"github.com/nhle/time-budget/internal/timecalc"
)

// dowToKey maps time.Weekday (0=Sunday) to the template day keys.
var dowToKey = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayKey returns the day key ("mon".."sun") for a "YYYY-MM-DD"
// date string, or "" when the date does not parse.
func WeekdayKey(date string) string {
	t, err := time.Parse(timecalc.DateLayout, date)
	if err != nil {
		return ""
	}
	return dowToKey[int(t.Weekday())]
}

// IsWeekday reports whether the date falls on Monday through Friday.
func IsWeekday(date string) bool {
	key := WeekdayKey(date)
	return key != "sat" && key != "sun"
}

// TemplateDayEntry returns the template entry governing the given date:
// the by-day entry when the template is in by-day mode, otherwise the
// weekday or weekend profile. Returns nil only when the expected branch
// is missing, which a complemented template never exhibits but the
// contract tolerates.
func TemplateDayEntry(tpl *model.Template, date string) *model.DayEntry {
	if tpl == nil {
		return nil
	}

	if tpl.Mode == model.ModeByDay {
		entry, ok := tpl.ByDay[WeekdayKey(date)]
		if !ok {
			return nil
		}
		return &entry
	}

	if IsWeekday(date) {
		entry := tpl.WeekdayWeekend.Weekday
		return &entry
	}
	entry := tpl.WeekdayWeekend.Weekend
	return &entry
}

// Resolver resolves per-date required minutes against the store.
type Resolver struct {
	store *store.Gateway
}

// NewResolver returns a resolver backed by the given gateway.
func NewResolver(g *store.Gateway) *Resolver {
	return &Resolver{store: g}
}

// DayRequiredMinutes returns the total required minutes for a date.
// Precedence: an override always wins over the template, and the
// template always wins over the zero default used when nothing is
// stored. Every call re-fetches from the store.
func (r *Resolver) DayRequiredMinutes(date string) int {
	if ov := r.store.GetOverride(date); ov != nil {
		return ov.TotalMinutes()
	}

	tpl := r.store.LoadTemplate()
	if tpl == nil {
		return 0
	}

	entry := TemplateDayEntry(tpl, date)
	if entry == nil {
		return 0
	}
	return entry.TotalMinutes()
}
