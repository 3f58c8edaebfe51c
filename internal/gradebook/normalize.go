// Package gradebook implements the field-driven grade disclosure engine:
// resolving the displayable field schema (which is store data, not code),
// looking up one student's raw row, normalizing raw values and deciding per
// field whether a grade has been published yet.
package gradebook

import (
	"math"
	"strconv"
	"strings"
)

// NotPublished is the sentinel shown in place of a grade that has not been
// disclosed yet. Consuming UIs match on the literal string.
const NotPublished = "Grades not published yet"

// GradeCategory is the field category whose textual values are coerced to
// numbers by NormalizeGradeText.
const GradeCategory = "grade"

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeDirect converts one raw store value into a disclosure-safe value.
// The second return is false when the field counts as undisclosed.
//
// Precedence:
//  1. a single-element sequence is replaced by its first element (the store
//     wraps some lookup fields in one-element arrays); an empty sequence
//     behaves as absent
//  2. nil or empty string means undisclosed
//  3. native numbers are rounded to 2 decimals regardless of category
//  4. strings pass through unchanged
//  5. anything else (bool, map, nested sequence) is undisclosed — never
//     expose a value shape we do not understand
func NormalizeDirect(raw any) (any, bool) {
	if seq, ok := raw.([]any); ok {
		if len(seq) == 0 {
			raw = nil
		} else {
			raw = seq[0]
		}
	}

	switch v := raw.(type) {
	case nil:
		return NotPublished, false
	case string:
		if v == "" {
			return NotPublished, false
		}
		return v, true
	case float64:
		return round2(v), true
	case float32:
		return round2(float64(v)), true
	case int:
		return round2(float64(v)), true
	case int32:
		return round2(float64(v)), true
	case int64:
		return round2(float64(v)), true
	default:
		return NotPublished, false
	}
}

// NormalizeGradeText is the category-aware variant for values that arrive as
// text: only fields of category "grade" get parsed as numbers (then rounded
// to 2 decimals); every other category passes through unchanged. Kept
// separate from NormalizeDirect on purpose — the two surfaces disagree on
// when parsing happens and unifying them would change behavior for
// non-grade categories.
func NormalizeGradeText(raw string, category string) any {
	if category != GradeCategory {
		return raw
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return round2(f)
}
