package input

import (
	"fmt"
	"strings"

	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/timecalc"
)

// HourMin is a raw hour/minute field pair as entered.
type HourMin struct {
	Hours   string
	Minutes string
}

// BaseForm holds the raw values of the five base activity fields.
type BaseForm struct {
	Sleep   HourMin
	Work    HourMin
	Commute HourMin
	Meal    HourMin
	Bath    HourMin
}

// ExtraForm is one raw extra-activity row.
type ExtraForm struct {
	Name    string
	Hours   string
	Minutes string
}

// DayForm is the raw profile for one day: base fields plus up to three
// extra rows.
type DayForm struct {
	Base   BaseForm
	Extras [model.MaxExtras]ExtraForm
}

// TemplateForm is the raw template input. In weekday/weekend mode the
// Weekday and Weekend base groups share the one Extras list; in by-day
// mode each day carries its own full DayForm.
type TemplateForm struct {
	Mode    string
	Weekday BaseForm
	Weekend BaseForm
	Extras  [model.MaxExtras]ExtraForm
	ByDay   map[string]DayForm
}

// OverrideForm is the raw input for one date's override.
type OverrideForm struct {
	Day  DayForm
	Memo string
}

var dayLabels = map[string]string{
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
	"sat": "Saturday",
	"sun": "Sunday",
}

// DayLabel returns the display name for a day key.
func DayLabel(key string) string {
	if label, ok := dayLabels[key]; ok {
		return label
	}
	return key
}

// ---- strict collectors (save path) ----

func validateHourMin(hm HourMin, label string) (int, []string) {
	var errs []string
	hours, msg := ValidateField(hm.Hours, label+" (hours)", 0, MaxHours)
	if msg != "" {
		errs = append(errs, msg)
	}
	minutes, msg := ValidateField(hm.Minutes, label+" (minutes)", 0, MaxMinutes)
	if msg != "" {
		errs = append(errs, msg)
	}
	return timecalc.ToMinutes(hours, minutes), errs
}

func validateBase(f BaseForm, group string) (model.BaseAllocation, []string) {
	var errs []string
	field := func(hm HourMin, name string) int {
		mins, fieldErrs := validateHourMin(hm, group+" "+name)
		errs = append(errs, fieldErrs...)
		return mins
	}
	base := model.BaseAllocation{
		Sleep:   field(f.Sleep, "sleep"),
		Work:    field(f.Work, "work"),
		Commute: field(f.Commute, "commute"),
		Meal:    field(f.Meal, "meal"),
		Bath:    field(f.Bath, "bath"),
	}
	return base, errs
}

func validateExtras(extras [model.MaxExtras]ExtraForm, group string) ([]model.ExtraItem, []string) {
	items := []model.ExtraItem{}
	var errs []string
	for i, ex := range extras {
		label := fmt.Sprintf("%s extra %d", group, i+1)
		mins, fieldErrs := validateHourMin(HourMin{Hours: ex.Hours, Minutes: ex.Minutes}, label)
		errs = append(errs, fieldErrs...)

		name := strings.TrimSpace(ex.Name)
		if name != "" && mins > 0 {
			items = append(items, model.ExtraItem{Name: name, Minutes: mins})
		}
	}
	return items, errs
}

// CollectTemplate validates a raw template form strictly and, when
// every field and every day budget passes, builds the full template.
// Both branches are rewritten: the authored branch from the form, the
// other derived from it, so neither is ever stale. Any error blocks
// the whole save; budget checks only run once all format checks pass.
func CollectTemplate(f TemplateForm) (model.Template, []string) {
	mode := f.Mode
	if mode == "" {
		mode = model.ModeWeekdayWeekend
	}

	switch mode {
	case model.ModeWeekdayWeekend:
		return collectWeekdayWeekend(f)
	case model.ModeByDay:
		return collectByDay(f)
	default:
		return model.Template{}, []string{fmt.Sprintf("mode: unknown template mode %q", f.Mode)}
	}
}

func collectWeekdayWeekend(f TemplateForm) (model.Template, []string) {
	wdBase, errs := validateBase(f.Weekday, "weekday")
	weBase, weErrs := validateBase(f.Weekend, "weekend")
	extras, exErrs := validateExtras(f.Extras, "shared")
	errs = append(errs, weErrs...)
	errs = append(errs, exErrs...)
	if len(errs) > 0 {
		return model.Template{}, errs
	}

	// The shared extras list is duplicated, never aliased.
	weekday := model.DayEntry{Base: wdBase, Extras: extras}.Clone()
	weekend := model.DayEntry{Base: weBase, Extras: extras}.Clone()

	if msg := timecalc.ValidateTotal(weekday.TotalMinutes()); msg != "" {
		errs = append(errs, "[weekday] "+msg)
	}
	if msg := timecalc.ValidateTotal(weekend.TotalMinutes()); msg != "" {
		errs = append(errs, "[weekend] "+msg)
	}
	if len(errs) > 0 {
		return model.Template{}, errs
	}

	ww := model.WeekdayWeekend{Weekday: weekday, Weekend: weekend}
	return model.Template{
		Mode:           model.ModeWeekdayWeekend,
		WeekdayWeekend: ww,
		ByDay:          model.DeriveByDay(ww),
	}, nil
}

func collectByDay(f TemplateForm) (model.Template, []string) {
	entries := make(map[string]model.DayEntry, len(model.DayKeys))
	var errs []string

	for _, key := range model.DayKeys {
		df := f.ByDay[key] // absent days validate as all-zero
		label := DayLabel(key)
		base, baseErrs := validateBase(df.Base, label)
		extras, exErrs := validateExtras(df.Extras, label)
		errs = append(errs, baseErrs...)
		errs = append(errs, exErrs...)
		entries[key] = model.DayEntry{Base: base, Extras: extras}
	}

	if len(errs) == 0 {
		for _, key := range model.DayKeys {
			if msg := timecalc.ValidateTotal(entries[key].TotalMinutes()); msg != "" {
				errs = append(errs, "["+DayLabel(key)+"] "+msg)
			}
		}
	}
	if len(errs) > 0 {
		return model.Template{}, errs
	}

	return model.Template{
		Mode:           model.ModeByDay,
		WeekdayWeekend: model.DeriveWeekdayWeekend(entries),
		ByDay:          entries,
	}, nil
}

// CollectOverride validates a raw override form strictly and builds the
// entry. Same all-or-nothing rule as templates.
func CollectOverride(f OverrideForm) (model.OverrideEntry, []string) {
	base, errs := validateBase(f.Day.Base, "override")
	extras, exErrs := validateExtras(f.Day.Extras, "override")
	errs = append(errs, exErrs...)
	if len(errs) > 0 {
		return model.OverrideEntry{}, errs
	}

	entry := model.OverrideEntry{Base: base, Extras: extras, Memo: strings.TrimSpace(f.Memo)}
	if msg := timecalc.ValidateTotal(entry.TotalMinutes()); msg != "" {
		return model.OverrideEntry{}, []string{msg}
	}
	return entry, nil
}

// ---- lenient collectors (live recalculation path) ----

func lenientHourMin(hm HourMin) int {
	return timecalc.ToMinutes(LenientInt(hm.Hours), LenientInt(hm.Minutes))
}

// LenientBase reads the five base fields leniently.
func LenientBase(f BaseForm) model.BaseAllocation {
	return model.BaseAllocation{
		Sleep:   lenientHourMin(f.Sleep),
		Work:    lenientHourMin(f.Work),
		Commute: lenientHourMin(f.Commute),
		Meal:    lenientHourMin(f.Meal),
		Bath:    lenientHourMin(f.Bath),
	}
}

// LenientExtras reads the extra rows leniently, dropping rows with an
// empty name or zero duration.
func LenientExtras(extras [model.MaxExtras]ExtraForm) []model.ExtraItem {
	items := []model.ExtraItem{}
	for _, ex := range extras {
		name := strings.TrimSpace(ex.Name)
		mins := timecalc.ToMinutes(LenientInt(ex.Hours), LenientInt(ex.Minutes))
		if name != "" && mins > 0 {
			items = append(items, model.ExtraItem{Name: name, Minutes: mins})
		}
	}
	return items
}

// LenientDayEntry reads a whole day form leniently.
func LenientDayEntry(f DayForm) model.DayEntry {
	return model.DayEntry{Base: LenientBase(f.Base), Extras: LenientExtras(f.Extras)}
}

// GroupResult is one day-profile's lenient calculation.
type GroupResult struct {
	Total int
	Free  int
}

// WeekdayWeekendResult is the lenient calculation over the
// weekday/weekend pair. Err aggregates both groups' budget violations;
// free figures are zero when their group is over budget.
type WeekdayWeekendResult struct {
	Weekday GroupResult
	Weekend GroupResult
	Err     string
}

// CalcWeekdayWeekend computes live totals for a weekday/weekend form.
func CalcWeekdayWeekend(f TemplateForm) WeekdayWeekendResult {
	extras := LenientExtras(f.Extras)
	weekday := model.DayEntry{Base: LenientBase(f.Weekday), Extras: extras}
	weekend := model.DayEntry{Base: LenientBase(f.Weekend), Extras: extras}

	wdTotal := weekday.TotalMinutes()
	weTotal := weekend.TotalMinutes()
	wdMsg := timecalc.ValidateTotal(wdTotal)
	weMsg := timecalc.ValidateTotal(weTotal)

	out := WeekdayWeekendResult{
		Weekday: GroupResult{Total: wdTotal},
		Weekend: GroupResult{Total: weTotal},
	}

	var msgs []string
	if wdMsg != "" {
		msgs = append(msgs, "[weekday] "+wdMsg)
	} else {
		out.Weekday.Free = timecalc.FreeMinutes(wdTotal)
	}
	if weMsg != "" {
		msgs = append(msgs, "[weekend] "+weMsg)
	} else {
		out.Weekend.Free = timecalc.FreeMinutes(weTotal)
	}
	out.Err = strings.Join(msgs, "\n")
	return out
}

// ByDayResult is the lenient calculation over a by-day form, keyed by
// day. Days over budget report zero free minutes and contribute a line
// to Err.
type ByDayResult struct {
	Days map[string]GroupResult
	Err  string
}

// CalcByDay computes live totals for a by-day form. Every day is
// checked independently and all violations are reported together.
func CalcByDay(f TemplateForm) ByDayResult {
	out := ByDayResult{Days: make(map[string]GroupResult, len(model.DayKeys))}
	var msgs []string

	for _, key := range model.DayKeys {
		entry := LenientDayEntry(f.ByDay[key])
		total := entry.TotalMinutes()
		result := GroupResult{Total: total}
		if msg := timecalc.ValidateTotal(total); msg != "" {
			msgs = append(msgs, "["+DayLabel(key)+"] "+msg)
		} else {
			result.Free = timecalc.FreeMinutes(total)
		}
		out.Days[key] = result
	}

	out.Err = strings.Join(msgs, "\n")
	return out
}
