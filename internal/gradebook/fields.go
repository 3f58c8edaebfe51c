package gradebook

import (
	"context"
	"sort"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

const (
	fieldsTable   = "GradesFields"
	displayColumn = "Display"
	displayYes    = "yes"
)

// maxFields caps the field-definition query; no course configures anywhere
// near this many displayable columns.
const maxFields = 100

// LoadDisplayableFields returns the ordered list of grade fields currently
// configured for display in base. The result may be empty (nothing
// configured yet); it is never partial. Ordering is by the Order column
// ascending with store order breaking ties; the sort happens client-side so
// the store needs no composite index for the Display filter.
func LoadDisplayableFields(ctx context.Context, st store.Client, base string) ([]types.FieldDefinition, error) {
	rows, err := st.Query(ctx, base, fieldsTable, store.Query{
		Conditions: []store.Condition{store.Eq(displayColumn, displayYes)},
		Limit:      maxFields,
	})
	if err != nil {
		return nil, err
	}

	fields := make([]types.FieldDefinition, 0, len(rows))
	for _, row := range rows {
		fields = append(fields, types.FieldDefinition{
			Key:      row.String("Field"),
			Label:    row.String("Label"),
			Category: row.String("Category"),
			Order:    row.Int("Order"),
		})
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	return fields, nil
}
