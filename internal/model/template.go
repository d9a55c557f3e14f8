// Package model defines the persisted documents of the time budget:
// the weekly template and the per-date overrides. All transformation
// helpers here are pure and return deep copies; no slice or map is
// ever shared between two branches of a document.
package model

// Template modes. Mode selects which branch of the template is
// authoritative for resolution; both branches are always populated.
const (
	ModeWeekdayWeekend = "weekdayWeekend"
	ModeByDay          = "byDay"
)

// DayKeys lists the by-day template keys in week order, Monday first.
var DayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// MaxExtras is the number of extra items a day entry may carry.
const MaxExtras = 3

// BaseAllocation holds the five fixed recurring activities in minutes.
type BaseAllocation struct {
	Sleep   int `json:"sleep"`
	Work    int `json:"work"`
	Commute int `json:"commute"`
	Meal    int `json:"meal"`
	Bath    int `json:"bath"`
}

// Sum returns the total minutes across the five base fields.
func (b BaseAllocation) Sum() int {
	return b.Sleep + b.Work + b.Commute + b.Meal + b.Bath
}

// ExtraItem is a user-named activity beyond the base five.
type ExtraItem struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

// DayEntry is one day's required-time profile. Its total may
// transiently exceed the day ceiling while being edited; the limit is
// enforced at save time, not here.
type DayEntry struct {
	Base   BaseAllocation `json:"base"`
	Extras []ExtraItem    `json:"extras"`
}

// EmptyDayEntry returns a zeroed profile with no extras.
func EmptyDayEntry() DayEntry {
	return DayEntry{Extras: []ExtraItem{}}
}

// TotalMinutes sums the base fields plus at most MaxExtras extras.
// Items beyond MaxExtras never contribute.
func (e DayEntry) TotalMinutes() int {
	total := e.Base.Sum()
	for i, ex := range e.Extras {
		if i >= MaxExtras {
			break
		}
		total += ex.Minutes
	}
	return total
}

// Clone returns a deep copy with independently owned extras.
func (e DayEntry) Clone() DayEntry {
	out := DayEntry{Base: e.Base, Extras: make([]ExtraItem, len(e.Extras))}
	copy(out.Extras, e.Extras)
	return out
}

// WeekdayWeekend is the two-profile form of the template.
type WeekdayWeekend struct {
	Weekday DayEntry `json:"weekday"`
	Weekend DayEntry `json:"weekend"`
}

// Template is the root persisted configuration. It is replaced whole on
// every save and migrated once from the legacy shape on first load.
type Template struct {
	Mode           string              `json:"mode"`
	WeekdayWeekend WeekdayWeekend      `json:"weekdayWeekend"`
	ByDay          map[string]DayEntry `json:"byDay"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := Template{
		Mode: t.Mode,
		WeekdayWeekend: WeekdayWeekend{
			Weekday: t.WeekdayWeekend.Weekday.Clone(),
			Weekend: t.WeekdayWeekend.Weekend.Clone(),
		},
		ByDay: make(map[string]DayEntry, len(t.ByDay)),
	}
	for key, entry := range t.ByDay {
		out.ByDay[key] = entry.Clone()
	}
	return out
}

// ComplementTemplate returns a corrected deep copy with every
// substructure present: Mode defaults to weekdayWeekend, nil extras
// become empty slices, and all seven by-day keys exist. Downstream
// consumers are thereby free of nil checks on template substructure.
// Idempotent.
func ComplementTemplate(t Template) Template {
	out := t.Clone()
	if out.Mode == "" {
		out.Mode = ModeWeekdayWeekend
	}
	out.WeekdayWeekend.Weekday = completeEntry(out.WeekdayWeekend.Weekday)
	out.WeekdayWeekend.Weekend = completeEntry(out.WeekdayWeekend.Weekend)
	if out.ByDay == nil {
		out.ByDay = make(map[string]DayEntry, len(DayKeys))
	}
	for _, key := range DayKeys {
		out.ByDay[key] = completeEntry(out.ByDay[key])
	}
	return out
}

func completeEntry(e DayEntry) DayEntry {
	if e.Extras == nil {
		e.Extras = []ExtraItem{}
	}
	return e
}

// IsWeekendKey reports whether key names a weekend day.
func IsWeekendKey(key string) bool {
	return key == "sat" || key == "sun"
}

// DeriveByDay expands a weekday/weekend pair into all seven by-day
// entries, weekend days from the weekend profile.
func DeriveByDay(ww WeekdayWeekend) map[string]DayEntry {
	byDay := make(map[string]DayEntry, len(DayKeys))
	for _, key := range DayKeys {
		if IsWeekendKey(key) {
			byDay[key] = ww.Weekend.Clone()
		} else {
			byDay[key] = ww.Weekday.Clone()
		}
	}
	return byDay
}

// DeriveWeekdayWeekend collapses by-day entries into a weekday/weekend
// pair using Monday and Saturday as the representative profiles.
func DeriveWeekdayWeekend(byDay map[string]DayEntry) WeekdayWeekend {
	return WeekdayWeekend{
		Weekday: byDay["mon"].Clone(),
		Weekend: byDay["sat"].Clone(),
	}
}
