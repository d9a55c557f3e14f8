package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nhle/time-budget/internal/input"
	"github.com/nhle/time-budget/internal/model"
	"github.com/nhle/time-budget/internal/store"
)

// openGateway loads the config and opens the document store. The
// returned func closes the store.
func openGateway() (*store.Gateway, *model.AppConfig, func(), error) {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return nil, nil, nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}

	kv, err := store.NewSQLiteKV(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}

	return store.NewGateway(kv), cfg, func() { kv.Close() }, nil
}

// parseHourMin splits "7:30" into its raw hour and minute parts. A
// value without a colon is hours only. The parts stay raw strings so
// strict validation still applies to them.
func parseHourMin(value string) input.HourMin {
	if h, m, ok := strings.Cut(value, ":"); ok {
		return input.HourMin{Hours: strings.TrimSpace(h), Minutes: strings.TrimSpace(m)}
	}
	return input.HourMin{Hours: strings.TrimSpace(value)}
}

// parseBaseSpec parses "sleep=7:00,work=8:30" into a base form.
// Unlisted activities stay blank (strict validation accepts blank as
// zero).
func parseBaseSpec(spec string) (input.BaseForm, error) {
	var form input.BaseForm
	if strings.TrimSpace(spec) == "" {
		return form, nil
	}

	for _, part := range strings.Split(spec, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return form, fmt.Errorf("invalid field %q (want activity=H:M)", part)
		}
		hm := parseHourMin(value)
		switch strings.TrimSpace(name) {
		case "sleep":
			form.Sleep = hm
		case "work":
			form.Work = hm
		case "commute":
			form.Commute = hm
		case "meal":
			form.Meal = hm
		case "bath":
			form.Bath = hm
		default:
			return form, fmt.Errorf("unknown activity %q (want sleep, work, commute, meal or bath)", strings.TrimSpace(name))
		}
	}
	return form, nil
}

// parseExtraSpecs converts repeated "Name=H:M" values into extra rows.
func parseExtraSpecs(specs []string) ([model.MaxExtras]input.ExtraForm, error) {
	var out [model.MaxExtras]input.ExtraForm
	if len(specs) > model.MaxExtras {
		return out, fmt.Errorf("at most %d extras are allowed", model.MaxExtras)
	}
	for i, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return out, fmt.Errorf("invalid extra %q (want Name=H:M)", spec)
		}
		hm := parseHourMin(value)
		out[i] = input.ExtraForm{
			Name:    strings.TrimSpace(name),
			Hours:   hm.Hours,
			Minutes: hm.Minutes,
		}
	}
	return out, nil
}

// printErrors writes a validation error list to stderr.
func printErrors(errs []string) {
	fmt.Fprintln(os.Stderr, "cannot save:")
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, "  - "+e)
	}
}
