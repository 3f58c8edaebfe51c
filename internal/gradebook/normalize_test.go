package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDirectUndisclosedShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"empty sequence", []any{}},
		{"bool", true},
		{"map", map[string]any{"a": 1}},
		{"nested sequence", []any{[]any{float64(1)}}},
		{"sequence wrapping empty string", []any{""}},
		{"sequence wrapping nil", []any{nil}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, disclosed := NormalizeDirect(tc.raw)
			assert.False(t, disclosed)
			assert.Equal(t, NotPublished, value)
		})
	}
}

func TestNormalizeDirectNumbers(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want float64
	}{
		{"rounds down", 3.14159, 3.14},
		{"rounds half away from zero", 0.125, 0.13},
		{"rounds negative half away from zero", -0.125, -0.13},
		{"two decimals unchanged", 87.67, 87.67},
		{"integer stays clean", int64(92), 92},
		{"float32", float32(1.5), 1.5},
		{"original grades example", 87.666, 87.67},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, disclosed := NormalizeDirect(tc.raw)
			assert.True(t, disclosed)
			assert.Equal(t, tc.want, value)
		})
	}
}

func TestNormalizeDirectStrings(t *testing.T) {
	value, disclosed := NormalizeDirect("A+")
	assert.True(t, disclosed)
	assert.Equal(t, "A+", value)

	// Numeric-looking text is NOT parsed on this surface.
	value, disclosed = NormalizeDirect("87.666")
	assert.True(t, disclosed)
	assert.Equal(t, "87.666", value)
}

func TestNormalizeDirectUnwrapsSingleElementSequence(t *testing.T) {
	value, disclosed := NormalizeDirect([]any{int64(92)})
	assert.True(t, disclosed)
	assert.Equal(t, float64(92), value)

	// Idempotent: the already-unwrapped scalar normalizes identically.
	unwrapped, _ := NormalizeDirect(int64(92))
	assert.Equal(t, unwrapped, value)

	value, disclosed = NormalizeDirect([]any{"midterm solutions"})
	assert.True(t, disclosed)
	assert.Equal(t, "midterm solutions", value)
}

func TestNormalizeDirectRoundingIdempotent(t *testing.T) {
	first, _ := NormalizeDirect(3.14159)
	second, _ := NormalizeDirect(first)
	assert.Equal(t, first, second)
}

func TestNormalizeGradeText(t *testing.T) {
	// Only category "grade" gets numeric coercion.
	assert.Equal(t, 87.67, NormalizeGradeText("87.666", "grade"))
	assert.Equal(t, float64(92), NormalizeGradeText("92", "grade"))
	assert.Equal(t, "87.666", NormalizeGradeText("87.666", "info"))
	assert.Equal(t, "pending", NormalizeGradeText("pending", "grade"))
	assert.Equal(t, "", NormalizeGradeText("", "grade"))
	assert.Equal(t, "A+", NormalizeGradeText("A+", "letter"))
}
