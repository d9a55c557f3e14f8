package model_test

import (
	"testing"

	"github.com/nhle/time-budget/internal/model"
)

func legacyFixture() model.LegacyTemplate {
	return model.LegacyTemplate{
		Weekday: map[string]model.LegacyHourMin{
			"sleep": {H: 7, M: 0},
			"work":  {H: 8, M: 30},
		},
		Holiday: map[string]model.LegacyHourMin{
			"sleep": {H: 9, M: 0},
		},
		Extras: []model.LegacyExtra{
			{Name: "Study", H: 1, M: 0},
		},
	}
}

func TestMigrateLegacyTemplate(t *testing.T) {
	tpl := model.MigrateLegacyTemplate(legacyFixture())

	if tpl.Mode != model.ModeWeekdayWeekend {
		t.Errorf("Mode = %q, want %q", tpl.Mode, model.ModeWeekdayWeekend)
	}
	if got := tpl.ByDay["mon"].Base.Sleep; got != 420 {
		t.Errorf("byDay.mon sleep = %d, want 420", got)
	}
	if got := tpl.ByDay["mon"].Base.Work; got != 510 {
		t.Errorf("byDay.mon work = %d, want 510", got)
	}
	if got := tpl.ByDay["sat"].Base.Sleep; got != 540 {
		t.Errorf("byDay.sat sleep = %d, want 540", got)
	}
	if got := tpl.ByDay["sat"].Base.Work; got != 0 {
		t.Errorf("byDay.sat work = %d, want 0 (holiday had none)", got)
	}
}

func TestMigrateLegacyTemplateExtrasAreIndependentCopies(t *testing.T) {
	tpl := model.MigrateLegacyTemplate(legacyFixture())

	mon := tpl.ByDay["mon"].Extras
	sat := tpl.ByDay["sat"].Extras
	if len(mon) != 1 || len(sat) != 1 || mon[0] != sat[0] {
		t.Fatalf("extras mismatch: mon=%v sat=%v", mon, sat)
	}

	mon[0].Minutes = 5
	if sat[0].Minutes != 60 {
		t.Error("mutating mon extras changed sat extras; copies must be independent")
	}
	if tpl.WeekdayWeekend.Weekday.Extras[0].Minutes != 60 {
		t.Error("mutating byDay extras changed the weekdayWeekend branch")
	}
}

func TestMigrateLegacyTemplateFiltersMalformedExtras(t *testing.T) {
	legacy := model.LegacyTemplate{
		Extras: []model.LegacyExtra{
			{Name: "", H: 1, M: 0},      // no name
			{Name: "Nothing"},           // zero duration
			{Name: "Gym", H: 0, M: 30},  // kept
		},
	}
	tpl := model.MigrateLegacyTemplate(legacy)

	extras := tpl.WeekdayWeekend.Weekday.Extras
	if len(extras) != 1 || extras[0].Name != "Gym" || extras[0].Minutes != 30 {
		t.Errorf("extras = %v, want only Gym 30min", extras)
	}
}

func TestMigrateLegacyTemplateToleratesMissingProfiles(t *testing.T) {
	tpl := model.MigrateLegacyTemplate(model.LegacyTemplate{})

	if got := tpl.WeekdayWeekend.Weekday.Base.Sum(); got != 0 {
		t.Errorf("weekday total = %d, want 0", got)
	}
	for _, key := range model.DayKeys {
		if _, ok := tpl.ByDay[key]; !ok {
			t.Errorf("ByDay missing key %q", key)
		}
	}
}

func TestDecodeTemplateLegacyShape(t *testing.T) {
	data := []byte(`{
		"weekday": {"sleep": {"h": 7, "m": 0}},
		"holiday": {"sleep": {"h": 9, "m": 0}},
		"extras": [{"name": "Study", "h": 1, "m": 0}]
	}`)
	tpl, err := model.DecodeTemplate(data)
	if err != nil {
		t.Fatalf("DecodeTemplate: %v", err)
	}
	if tpl.Mode != model.ModeWeekdayWeekend {
		t.Errorf("Mode = %q, want migrated default", tpl.Mode)
	}
	if tpl.ByDay["sun"].Base.Sleep != 540 {
		t.Errorf("sun sleep = %d, want 540", tpl.ByDay["sun"].Base.Sleep)
	}
}

func TestDecodeTemplateCurrentShapeIsComplemented(t *testing.T) {
	data := []byte(`{"mode": "byDay", "byDay": {"mon": {"base": {"sleep": 420}}}}`)
	tpl, err := model.DecodeTemplate(data)
	if err != nil {
		t.Fatalf("DecodeTemplate: %v", err)
	}
	if tpl.Mode != model.ModeByDay {
		t.Errorf("Mode = %q, want byDay", tpl.Mode)
	}
	if tpl.ByDay["mon"].Base.Sleep != 420 {
		t.Errorf("mon sleep = %d, want 420", tpl.ByDay["mon"].Base.Sleep)
	}
	if _, ok := tpl.ByDay["tue"]; !ok {
		t.Error("missing byDay keys must be complemented")
	}
}

func TestDecodeTemplateMalformed(t *testing.T) {
	if _, err := model.DecodeTemplate([]byte("{not json")); err == nil {
		t.Error("DecodeTemplate on malformed JSON must fail")
	}
}
