package store_test

import (
	"testing"

	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/store"
	"github.com/nhle/time-budget/tests/testutil"
)

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv := testutil.NewTestKV(t)

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}

	value, ok, err := kv.Get("k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("Get(k) = %q ok=%v err=%v, want v2", value, ok, err)
	}

	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("Get after Remove still finds the key")
	}

	// Removing an absent key is not an error.
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove(absent): %v", err)
	}
}

func sampleTemplate() model.Template {
	ww := model.WeekdayWeekend{
		Weekday: model.DayEntry{
			Base:   model.BaseAllocation{Sleep: 420, Work: 480},
			Extras: []model.ExtraItem{{Name: "Study", Minutes: 60}},
		},
		Weekend: model.DayEntry{
			Base:   model.BaseAllocation{Sleep: 540},
			Extras: []model.ExtraItem{{Name: "Study", Minutes: 60}},
		},
	}
	return model.Template{
		Mode:           model.ModeWeekdayWeekend,
		WeekdayWeekend: ww,
		ByDay:          model.DeriveByDay(ww),
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	gw := testutil.NewTestGateway(t)

	if gw.LoadTemplate() != nil {
		t.Fatal("LoadTemplate on empty store must be nil")
	}

	if !gw.SaveTemplate(sampleTemplate()) {
		t.Fatal("SaveTemplate failed")
	}

	got := gw.LoadTemplate()
	if got == nil {
		t.Fatal("LoadTemplate returned nil after save")
	}
	if got.WeekdayWeekend.Weekday.Base.Sleep != 420 {
		t.Errorf("weekday sleep = %d, want 420", got.WeekdayWeekend.Weekday.Base.Sleep)
	}
	if got.ByDay["sun"].Base.Sleep != 540 {
		t.Errorf("sun sleep = %d, want 540", got.ByDay["sun"].Base.Sleep)
	}
}

func TestLoadTemplateCorruptDocument(t *testing.T) {
	kv := testutil.NewTestKV(t)
	gw := store.NewGateway(kv)

	if err := kv.Set("free_time_template", "{broken"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if gw.LoadTemplate() != nil {
		t.Error("corrupt template must load as nil, same as absent")
	}
}

func TestLoadTemplateMigratesLegacyDocument(t *testing.T) {
	kv := testutil.NewTestKV(t)
	gw := store.NewGateway(kv)

	legacy := `{
		"weekday": {"sleep": {"h": 7, "m": 0}},
		"holiday": {"sleep": {"h": 9, "m": 0}},
		"extras": [{"name": "Study", "h": 1, "m": 0}]
	}`
	if err := kv.Set("free_time_template", legacy); err != nil {
		t.Fatalf("Set: %v", err)
	}

	tpl := gw.LoadTemplate()
	if tpl == nil {
		t.Fatal("legacy template must load")
	}
	if tpl.Mode != model.ModeWeekdayWeekend {
		t.Errorf("Mode = %q, want weekdayWeekend", tpl.Mode)
	}
	if tpl.ByDay["mon"].Base.Sleep != 420 || tpl.ByDay["sat"].Base.Sleep != 540 {
		t.Errorf("migrated byDay wrong: mon=%d sat=%d",
			tpl.ByDay["mon"].Base.Sleep, tpl.ByDay["sat"].Base.Sleep)
	}
}

func TestOverridesLifecycle(t *testing.T) {
	gw := testutil.NewTestGateway(t)

	if got := gw.LoadOverrides(); got == nil || len(got) != 0 {
		t.Fatalf("LoadOverrides on empty store = %v, want empty map", got)
	}
	if gw.GetOverride("2024-01-08") != nil {
		t.Fatal("GetOverride on empty store must be nil")
	}

	entry := model.OverrideEntry{
		Base:   model.BaseAllocation{Sleep: 300},
		Extras: []model.ExtraItem{},
		Memo:   "short night",
	}
	if !gw.SaveOverride("2024-01-08", entry) {
		t.Fatal("SaveOverride failed")
	}

	got := gw.GetOverride("2024-01-08")
	if got == nil || got.Base.Sleep != 300 || got.Memo != "short night" {
		t.Fatalf("GetOverride = %+v", got)
	}

	// Read-modify-write keeps other keys.
	if !gw.SaveOverride("2024-01-09", model.OverrideEntry{Base: model.BaseAllocation{Sleep: 100}}) {
		t.Fatal("SaveOverride (second) failed")
	}
	if gw.GetOverride("2024-01-08") == nil {
		t.Fatal("saving a second date dropped the first")
	}

	if !gw.DeleteOverride("2024-01-08") {
		t.Fatal("DeleteOverride failed")
	}
	if gw.GetOverride("2024-01-08") != nil {
		t.Fatal("override still present after delete")
	}

	// Deleting an absent date is a no-op success.
	if !gw.DeleteOverride("2024-01-08") {
		t.Fatal("DeleteOverride(absent) must succeed")
	}
}

func TestLoadOverridesCorruptDocument(t *testing.T) {
	kv := testutil.NewTestKV(t)
	gw := store.NewGateway(kv)

	if err := kv.Set("free_time_overrides", "[1,2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := gw.LoadOverrides(); got == nil || len(got) != 0 {
		t.Errorf("corrupt overrides = %v, want empty map", got)
	}
}

func TestClearAll(t *testing.T) {
	gw := testutil.NewTestGateway(t)

	gw.SaveTemplate(sampleTemplate())
	gw.SaveOverride("2024-01-08", model.OverrideEntry{Base: model.BaseAllocation{Sleep: 300}})

	if !gw.ClearAll() {
		t.Fatal("ClearAll failed")
	}
	if gw.LoadTemplate() != nil {
		t.Error("template still loads after ClearAll")
	}
	if len(gw.LoadOverrides()) != 0 {
		t.Error("overrides still load after ClearAll")
	}
}
