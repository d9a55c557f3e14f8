package model

import (
	"encoding/json"

	"github.com/nhle/time-budget/internal/timecalc"
)

// LegacyTemplate is the historical persisted shape, recognized by the
// absence of a "mode" key: two hour/minute day profiles plus one shared
// extras list.
type LegacyTemplate struct {
	Weekday map[string]LegacyHourMin `json:"weekday"`
	Holiday map[string]LegacyHourMin `json:"holiday"`
	Extras  []LegacyExtra            `json:"extras"`
}

// LegacyHourMin is an hour/minute pair from the legacy format.
type LegacyHourMin struct {
	H int `json:"h"`
	M int `json:"m"`
}

// LegacyExtra is a named hour/minute extra from the legacy format.
type LegacyExtra struct {
	Name string `json:"name"`
	H    int    `json:"h"`
	M    int    `json:"m"`
}

// MigrateLegacyTemplate converts a legacy template into the current
// shape: weekday and holiday profiles become the weekday/weekend pair,
// the by-day entries mirror that split, and the shared extras list is
// deep-copied into every entry (the legacy format had no per-weekday
// extras). Pure and deterministic; absent sub-objects convert to
// all-zero profiles, and extras with an empty name or a zero duration
// are filtered out.
func MigrateLegacyTemplate(legacy LegacyTemplate) Template {
	weekday := DayEntry{
		Base:   convertLegacyBase(legacy.Weekday),
		Extras: convertLegacyExtras(legacy.Extras),
	}
	weekend := DayEntry{
		Base:   convertLegacyBase(legacy.Holiday),
		Extras: convertLegacyExtras(legacy.Extras),
	}
	ww := WeekdayWeekend{Weekday: weekday, Weekend: weekend}
	return Template{
		Mode:           ModeWeekdayWeekend,
		WeekdayWeekend: ww,
		ByDay:          DeriveByDay(ww),
	}
}

func convertLegacyBase(day map[string]LegacyHourMin) BaseAllocation {
	minutes := func(field string) int {
		hm, ok := day[field]
		if !ok {
			return 0
		}
		return timecalc.ToMinutes(hm.H, hm.M)
	}
	return BaseAllocation{
		Sleep:   minutes("sleep"),
		Work:    minutes("work"),
		Commute: minutes("commute"),
		Meal:    minutes("meal"),
		Bath:    minutes("bath"),
	}
}

func convertLegacyExtras(extras []LegacyExtra) []ExtraItem {
	out := []ExtraItem{}
	for _, ex := range extras {
		if ex.Name == "" {
			continue
		}
		mins := timecalc.ToMinutes(ex.H, ex.M)
		if mins <= 0 {
			continue
		}
		out = append(out, ExtraItem{Name: ex.Name, Minutes: mins})
	}
	return out
}

// DecodeTemplate parses a stored template document. It first probes for
// the "mode" discriminant: present means the current schema (missing
// keys complemented), absent means the legacy schema (migrated). Either
// way the result is fully populated. This is a one-time upgrade path,
// not a steady-state dual format.
func DecodeTemplate(data []byte) (Template, error) {
	var probe struct {
		Mode string `json:"mode"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Template{}, err
	}

	if probe.Mode == "" {
		var legacy LegacyTemplate
		if err := json.Unmarshal(data, &legacy); err != nil {
			return Template{}, err
		}
		return MigrateLegacyTemplate(legacy), nil
	}

	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return Template{}, err
	}
	return ComplementTemplate(tpl), nil
}
