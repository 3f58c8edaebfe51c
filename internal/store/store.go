// Package store is the boundary to the external tabular data service. Each
// base (tenant) owns a set of tables; rows come back as opaque field maps.
// The rest of the system only depends on the Client interface, never on the
// backing service directly.
package store

import (
	"errors"
	"time"
)

var (
	// ErrNotFound signals a key lookup that matched no row.
	ErrNotFound = errors.New("store: row not found")

	// ErrUnavailable wraps transport and query failures against the
	// backing service.
	ErrUnavailable = errors.New("store: unavailable")
)

// Row is one record as returned by the store. Values keep their native
// decoded types; a missing field is simply an absent key. The row's document
// ID is exposed under IDKey.
type Row map[string]any

// IDKey is the reserved row key holding the store-assigned record ID.
const IDKey = "_id"

// Op is a filter comparison operator. The system only needs AND-combined
// equality and is-after-date terms.
type Op int

const (
	OpEqual Op = iota
	OpAfter
)

// Condition is one filter term. All conditions of a query are AND-combined.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Query describes one read against a table.
type Query struct {
	Conditions []Condition
	OrderBy    string
	Desc       bool
	Limit      int
}

// Eq builds an equality condition.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEqual, Value: value}
}

// After builds an is-after-date condition.
func After(field string, t time.Time) Condition {
	return Condition{Field: field, Op: OpAfter, Value: t}
}
