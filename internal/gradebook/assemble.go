package gradebook

import (
	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// Assemble joins the field schema with a student's raw row into the final
// report. Every configured field produces exactly one item, disclosed or
// not, and output order is input field order — never re-sorted by value or
// label. A pending field yields the sentinel rather than being dropped so
// callers can render it as a pending row.
func Assemble(fields []types.FieldDefinition, record store.Row) types.DisclosureReport {
	report := types.DisclosureReport{
		Items: make([]types.GradeItem, 0, len(fields)),
	}

	for _, field := range fields {
		value, disclosed := NormalizeDirect(record[field.Key])
		if !disclosed {
			report.HasUndisclosed = true
		}

		report.Items = append(report.Items, types.GradeItem{
			Field:    field.Key,
			Label:    field.Label,
			Category: field.Category,
			Value:    value,
			Order:    field.Order,
		})
	}

	return report
}
