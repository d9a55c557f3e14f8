package store

import (
	"encoding/json"
	"log"

	"github.com/nhle/time-budget/internal/model"
)

// Document keys. The store holds exactly two documents, each replaced
// whole on every write.
const (
	templateKey  = "free_time_template"
	overridesKey = "free_time_overrides"
)

// Gateway reads and writes the template and overrides documents through
// a KV store. Every failure is logged and surfaced as nil or false;
// nothing propagates as an error, and a corrupt document is treated the
// same as an absent one.
type Gateway struct {
	kv KV
}

// NewGateway wraps the given KV store.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// LoadTemplate returns the stored template, migrated from the legacy
// shape if necessary and with missing keys complemented, or nil when no
// template exists or the stored document cannot be parsed. The result
// is always fully populated when non-nil.
func (g *Gateway) LoadTemplate() *model.Template {
	raw, ok, err := g.kv.Get(templateKey)
	if err != nil {
		log.Printf("store: loading template: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	tpl, err := model.DecodeTemplate([]byte(raw))
	if err != nil {
		log.Printf("store: corrupt template document: %v", err)
		return nil
	}
	return &tpl
}

// SaveTemplate serializes and writes the whole template. Returns false
// on any store failure.
func (g *Gateway) SaveTemplate(tpl model.Template) bool {
	data, err := json.Marshal(tpl)
	if err != nil {
		log.Printf("store: encoding template: %v", err)
		return false
	}
	if err := g.kv.Set(templateKey, string(data)); err != nil {
		log.Printf("store: saving template: %v", err)
		return false
	}
	return true
}

// LoadOverrides returns the overrides map, never nil: absence and
// corruption both yield an empty map.
func (g *Gateway) LoadOverrides() model.Overrides {
	raw, ok, err := g.kv.Get(overridesKey)
	if err != nil {
		log.Printf("store: loading overrides: %v", err)
		return model.Overrides{}
	}
	if !ok {
		return model.Overrides{}
	}

	var overrides model.Overrides
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		log.Printf("store: corrupt overrides document: %v", err)
		return model.Overrides{}
	}
	if overrides == nil {
		overrides = model.Overrides{}
	}
	return overrides
}

// SaveOverrides serializes and writes the whole overrides map.
func (g *Gateway) SaveOverrides(overrides model.Overrides) bool {
	data, err := json.Marshal(overrides)
	if err != nil {
		log.Printf("store: encoding overrides: %v", err)
		return false
	}
	if err := g.kv.Set(overridesKey, string(data)); err != nil {
		log.Printf("store: saving overrides: %v", err)
		return false
	}
	return true
}

// GetOverride returns the override entry for the given date, or nil.
func (g *Gateway) GetOverride(date string) *model.OverrideEntry {
	overrides := g.LoadOverrides()
	entry, ok := overrides[date]
	if !ok {
		return nil
	}
	return &entry
}

// SaveOverride sets one date's entry via read-modify-write of the whole
// overrides document. Not atomic across concurrent writers; the system
// assumes a single synchronous caller.
func (g *Gateway) SaveOverride(date string, entry model.OverrideEntry) bool {
	overrides := g.LoadOverrides()
	overrides[date] = entry
	return g.SaveOverrides(overrides)
}

// DeleteOverride removes one date's entry and persists the rest.
// Deleting an absent date succeeds without writing.
func (g *Gateway) DeleteOverride(date string) bool {
	overrides := g.LoadOverrides()
	if _, ok := overrides[date]; !ok {
		return true
	}
	delete(overrides, date)
	return g.SaveOverrides(overrides)
}

// ClearAll removes both documents entirely. Afterwards LoadTemplate
// returns nil (not an empty template) and LoadOverrides is empty.
func (g *Gateway) ClearAll() bool {
	ok := true
	if err := g.kv.Remove(templateKey); err != nil {
		log.Printf("store: clearing template: %v", err)
		ok = false
	}
	if err := g.kv.Remove(overridesKey); err != nil {
		log.Printf("store: clearing overrides: %v", err)
		ok = false
	}
	return ok
}
