package gradebook

import (
	"context"
	"errors"
	"strings"

	"github.com/mmogib/classwork-v2/internal/store"
)

const (
	gradesTable = "Grades"
	hidColumn   = "HID"
)

var (
	// ErrInvalidIdentifier signals an empty or missing student identifier.
	ErrInvalidIdentifier = errors.New("gradebook: student identifier is required")

	// ErrStudentNotFound signals that no grade row exists for the
	// identifier.
	ErrStudentNotFound = errors.New("gradebook: student not found")
)

// ResolveStudent fetches the single grade row for hid in base. The
// identifier is an opaque exact-match key; it is never parsed beyond the
// non-empty check. If the store holds more than one matching row (invalid
// data) the first returned is authoritative.
func ResolveStudent(ctx context.Context, st store.Client, base, hid string) (store.Row, error) {
	if strings.TrimSpace(hid) == "" {
		return nil, ErrInvalidIdentifier
	}

	rows, err := st.Query(ctx, base, gradesTable, store.Query{
		Conditions: []store.Condition{store.Eq(hidColumn, hid)},
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrStudentNotFound
	}

	return rows[0], nil
}
