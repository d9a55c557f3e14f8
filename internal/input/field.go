// Package input parses and validates raw form field values and turns
// whole forms into persistable documents. Every numeric field has two
// distinct read paths: a lenient total function used for live
// recalculation (never fails, malformed input reads as zero) and a
// strict validator used only at save time (malformed input produces a
// field-labeled message and blocks the save).
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field ranges for the strict validator.
const (
	MaxHours   = 24
	MaxMinutes = 59
)

// LenientInt reads a raw numeric field for live recalculation: blank,
// non-numeric, and negative values read as 0, fractional values are
// truncated. Never fails.
func LenientInt(raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return int(math.Floor(n))
}

// ValidateField reads a raw numeric field strictly. Blank is accepted
// as 0; anything non-numeric, non-integer, or outside [min,max] yields
// 0 and a message labeled with the field name.
func ValidateField(raw, label string, min, max int) (int, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, ""
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Sprintf("%s: enter a valid number", label)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Sprintf("%s: enter a whole number", label)
	}

	num := int(n)
	if num < min {
		return 0, fmt.Sprintf("%s: must be %d or more", label, min)
	}
	if num > max {
		return 0, fmt.Sprintf("%s: must be %d or less", label, max)
	}
	return num, ""
}
