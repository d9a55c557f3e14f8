package schedule_test

import (
	"testing"

	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/schedule"
	"github.com/nhle/time-budget/tests/testutil"
)

func TestWeekdayKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-07", "sun"},
		{"2024-01-08", "mon"},
		{"2024-01-12", "fri"},
		{"2024-01-13", "sat"},
		{"2024-02-29", "thu"},
		{"not-a-date", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := schedule.WeekdayKey(tt.date); got != tt.want {
			t.Errorf("WeekdayKey(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestIsWeekday(t *testing.T) {
	if !schedule.IsWeekday("2024-01-08") {
		t.Error("Monday must be a weekday")
	}
	if schedule.IsWeekday("2024-01-13") || schedule.IsWeekday("2024-01-07") {
		t.Error("Saturday and Sunday must not be weekdays")
	}
}

func TestTemplateDayEntryWeekdayWeekendMode(t *testing.T) {
	tpl := &model.Template{
		Mode: model.ModeWeekdayWeekend,
		WeekdayWeekend: model.WeekdayWeekend{
			Weekday: model.DayEntry{Base: model.BaseAllocation{Sleep: 420}},
			Weekend: model.DayEntry{Base: model.BaseAllocation{Sleep: 540}},
		},
	}

	if got := schedule.TemplateDayEntry(tpl, "2024-01-08"); got.Base.Sleep != 420 {
		t.Errorf("Monday entry sleep = %d, want 420", got.Base.Sleep)
	}
	if got := schedule.TemplateDayEntry(tpl, "2024-01-13"); got.Base.Sleep != 540 {
		t.Errorf("Saturday entry sleep = %d, want 540", got.Base.Sleep)
	}
}

func TestTemplateDayEntryByDayModeIgnoresOtherBranch(t *testing.T) {
	tpl := &model.Template{
		Mode: model.ModeByDay,
		WeekdayWeekend: model.WeekdayWeekend{
			Weekday: model.DayEntry{Base: model.BaseAllocation{Sleep: 999}},
		},
		ByDay: map[string]model.DayEntry{
			"mon": {Base: model.BaseAllocation{Sleep: 420}},
		},
	}

	if got := schedule.TemplateDayEntry(tpl, "2024-01-08"); got.Base.Sleep != 420 {
		t.Errorf("byDay mode must use the byDay branch, got sleep %d", got.Base.Sleep)
	}
	if got := schedule.TemplateDayEntry(tpl, "2024-01-09"); got != nil {
		t.Errorf("missing byDay key must yield nil, got %+v", got)
	}
}

func TestTemplateDayEntryNilTemplate(t *testing.T) {
	if got := schedule.TemplateDayEntry(nil, "2024-01-08"); got != nil {
		t.Errorf("nil template must yield nil, got %+v", got)
	}
}

func TestDayRequiredMinutesPrecedence(t *testing.T) {
	gw := testutil.NewTestGateway(t)
	r := schedule.NewResolver(gw)

	// Nothing stored yet.
	if got := r.DayRequiredMinutes("2024-01-08"); got != 0 {
		t.Fatalf("empty store required = %d, want 0", got)
	}

	ww := model.WeekdayWeekend{
		Weekday: model.DayEntry{Base: model.BaseAllocation{Sleep: 420}},
		Weekend: model.DayEntry{Base: model.BaseAllocation{Sleep: 540}},
	}
	gw.SaveTemplate(model.Template{
		Mode:           model.ModeWeekdayWeekend,
		WeekdayWeekend: ww,
		ByDay:          model.DeriveByDay(ww),
	})

	if got := r.DayRequiredMinutes("2024-01-08"); got != 420 {
		t.Fatalf("template required = %d, want 420", got)
	}

	gw.SaveOverride("2024-01-08", model.OverrideEntry{
		Base: model.BaseAllocation{Sleep: 300},
	})
	if got := r.DayRequiredMinutes("2024-01-08"); got != 300 {
		t.Fatalf("override required = %d, want 300", got)
	}

	// Other dates are untouched by the override.
	if got := r.DayRequiredMinutes("2024-01-09"); got != 420 {
		t.Fatalf("non-overridden date required = %d, want 420", got)
	}

	gw.DeleteOverride("2024-01-08")
	if got := r.DayRequiredMinutes("2024-01-08"); got != 420 {
		t.Fatalf("required after delete = %d, want template's 420", got)
	}
}
