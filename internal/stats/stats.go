// Package stats computes the presentation-facing free-time figures:
// per-date results and the trailing 7-day summary.
package stats

import (
	"time"

	"github.com/nhle/time-budget/internal/schedule"
	"github.com/nhle/time-budget/internal/store"
	"github.com/nhle/time-budget/internal/timecalc"
)

// Day result sources.
const (
	SourceOverride = "override"
	SourceTemplate = "template"
)

// Clock supplies the current local date. Injectable for tests; the
// core otherwise never accepts an arbitrary "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// DayResult is the per-date calculation result the presentation layer
// renders. Free is zero whenever Err is set; a negative free figure is
// never exposed.
type DayResult struct {
	Total  int    `json:"total"`
	Free   int    `json:"free"`
	Source string `json:"source"`
	Err    string `json:"error,omitempty"`
}

// Summary is the fixed aggregate shape: dates most recent first
// (today included), the matching free-minute figures, and their sum.
type Summary struct {
	Dates []string `json:"dates"`
	Daily []int    `json:"daily"`
	Total int      `json:"total"`
}

// WeekDayLine is one row of the weekly dashboard view.
type WeekDayLine struct {
	Date    string
	Free    int
	Source  string
	IsToday bool
}

// WeeklySummary is the dashboard's 7-day view: the summary rows plus
// how many of the days were governed by overrides.
type WeeklySummary struct {
	Days          []WeekDayLine
	Total         int
	OverrideCount int
}

// Calculator composes the resolver and the time arithmetic across date
// ranges.
type Calculator struct {
	store    *store.Gateway
	resolver *schedule.Resolver
	clock    Clock
}

// NewCalculator returns a calculator backed by the given gateway. A nil
// clock means the system clock.
func NewCalculator(g *store.Gateway, clock Clock) *Calculator {
	if clock == nil {
		clock = systemClock{}
	}
	return &Calculator{
		store:    g,
		resolver: schedule.NewResolver(g),
		clock:    clock,
	}
}

// FreeMinutesForDay returns 1440 minus the date's required minutes.
// Callers needing error-aware figures use ForDate instead.
func (c *Calculator) FreeMinutesForDay(date string) int {
	return timecalc.FreeMinutes(c.resolver.DayRequiredMinutes(date))
}

// ForDate returns the full per-date result: the governing source, the
// required total, and either the free minutes or a budget error when
// the stored profile exceeds one day.
func (c *Calculator) ForDate(date string) DayResult {
	source := SourceTemplate
	total := 0

	if ov := c.store.GetOverride(date); ov != nil {
		source = SourceOverride
		total = ov.TotalMinutes()
	} else if tpl := c.store.LoadTemplate(); tpl != nil {
		if entry := schedule.TemplateDayEntry(tpl, date); entry != nil {
			total = entry.TotalMinutes()
		}
	}

	if msg := timecalc.ValidateTotal(total); msg != "" {
		return DayResult{Total: total, Free: 0, Source: source, Err: msg}
	}
	return DayResult{Total: total, Free: timecalc.FreeMinutes(total), Source: source}
}

// LastNDays aggregates free minutes over the n dates ending today,
// most recent first.
func (c *Calculator) LastNDays(n int) Summary {
	dates := timecalc.LastNDates(c.clock.Now(), n)
	daily := make([]int, 0, len(dates))
	total := 0
	for _, date := range dates {
		free := c.FreeMinutesForDay(date)
		daily = append(daily, free)
		total += free
	}
	return Summary{Dates: dates, Daily: daily, Total: total}
}

// WeeklySummary builds the trailing 7-day dashboard view with per-day
// source markers.
func (c *Calculator) WeeklySummary() WeeklySummary {
	week := c.LastNDays(7)
	today := timecalc.FormatDate(c.clock.Now())

	out := WeeklySummary{Total: week.Total}
	for i, date := range week.Dates {
		source := SourceTemplate
		if c.store.GetOverride(date) != nil {
			source = SourceOverride
			out.OverrideCount++
		}
		out.Days = append(out.Days, WeekDayLine{
			Date:    date,
			Free:    week.Daily[i],
			Source:  source,
			IsToday: date == today,
		})
	}
	return out
}
