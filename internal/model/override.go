package model

// OverrideEntry fully replaces the template-derived profile for one
// calendar date. Presence of the date key in Overrides is what makes it
// authoritative; deleting the key reverts the date to the template.
type OverrideEntry struct {
	Base   BaseAllocation `json:"base"`
	Extras []ExtraItem    `json:"extras"`
	Memo   string         `json:"memo"`
}

// TotalMinutes sums the base fields plus at most MaxExtras extras.
func (o OverrideEntry) TotalMinutes() int {
	return DayEntry{Base: o.Base, Extras: o.Extras}.TotalMinutes()
}

// Clone returns a deep copy with independently owned extras.
func (o OverrideEntry) Clone() OverrideEntry {
	out := OverrideEntry{Base: o.Base, Memo: o.Memo, Extras: make([]ExtraItem, len(o.Extras))}
	copy(out.Extras, o.Extras)
	return out
}

// DayEntry returns the override's profile as a plain day entry.
func (o OverrideEntry) DayEntry() DayEntry {
	return DayEntry{Base: o.Base, Extras: o.Extras}.Clone()
}

// Overrides maps "YYYY-MM-DD" date strings to their override entries.
// Unbounded, no expiry; persisted as a single document.
type Overrides map[string]OverrideEntry
