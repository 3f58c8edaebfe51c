package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

func TestAssembleDisclosedGrade(t *testing.T) {
	fields := []types.FieldDefinition{
		{Key: "midterm", Label: "Midterm", Category: "grade", Order: 1},
	}
	record := store.Row{"midterm": 87.666}

	report := Assemble(fields, record)

	assert.False(t, report.HasUndisclosed)
	assert.Equal(t, []types.GradeItem{
		{Field: "midterm", Label: "Midterm", Category: "grade", Value: 87.67, Order: 1},
	}, report.Items)
}

func TestAssembleAbsentKeyIsPending(t *testing.T) {
	fields := []types.FieldDefinition{
		{Key: "midterm", Label: "Midterm", Category: "grade", Order: 1},
	}

	report := Assemble(fields, store.Row{})

	assert.True(t, report.HasUndisclosed)
	assert.Len(t, report.Items, 1)
	assert.Equal(t, NotPublished, report.Items[0].Value)
	assert.Equal(t, 1, report.Items[0].Order)
}

func TestAssembleEmptyFieldList(t *testing.T) {
	report := Assemble(nil, store.Row{"midterm": 95.0})

	assert.False(t, report.HasUndisclosed)
	assert.NotNil(t, report.Items)
	assert.Empty(t, report.Items)
}

func TestAssemblePreservesFieldOrderAndCount(t *testing.T) {
	fields := []types.FieldDefinition{
		{Key: "final", Label: "Final", Category: "grade", Order: 3},
		{Key: "hw1", Label: "Homework 1", Category: "grade", Order: 1},
		{Key: "note", Label: "Note", Category: "info", Order: 2},
	}
	record := store.Row{"hw1": 10.0, "note": "see me"}

	report := Assemble(fields, record)

	// Output order is field order, never re-sorted by value or label.
	assert.Len(t, report.Items, len(fields))
	for i, field := range fields {
		assert.Equal(t, field.Key, report.Items[i].Field)
		assert.Equal(t, field.Label, report.Items[i].Label)
		assert.Equal(t, field.Category, report.Items[i].Category)
		assert.Equal(t, field.Order, report.Items[i].Order)
	}
}

func TestAssembleUnwrapsSequenceValues(t *testing.T) {
	fields := []types.FieldDefinition{
		{Key: "quiz", Label: "Quiz", Category: "grade", Order: 1},
	}
	record := store.Row{"quiz": []any{int64(92)}}

	report := Assemble(fields, record)

	assert.False(t, report.HasUndisclosed)
	assert.Equal(t, float64(92), report.Items[0].Value)
}

func TestAssembleUndisclosedFlagMatchesSentinelItems(t *testing.T) {
	fields := []types.FieldDefinition{
		{Key: "a", Label: "A", Category: "grade", Order: 1},
		{Key: "b", Label: "B", Category: "grade", Order: 2},
	}

	cases := []struct {
		name   string
		record store.Row
	}{
		{"all published", store.Row{"a": 1.0, "b": 2.0}},
		{"one pending", store.Row{"a": 1.0}},
		{"all pending", store.Row{}},
		{"empty string pending", store.Row{"a": 1.0, "b": ""}},
		{"unrecognized shape pending", store.Row{"a": true, "b": 2.0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := Assemble(fields, tc.record)

			sentinels := 0
			for _, item := range report.Items {
				if item.Value == NotPublished {
					sentinels++
				}
			}
			assert.Equal(t, sentinels > 0, report.HasUndisclosed)
		})
	}
}
