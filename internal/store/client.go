package store

import "context"

// Client is the narrow read-only surface the API needs from the tabular
// store. Implementations must return ErrNotFound from GetByKey when no row
// matches and wrap every transport failure in ErrUnavailable.
type Client interface {
	// Query returns all rows of base/table matching q, in store order
	// unless q.OrderBy is set.
	Query(ctx context.Context, base, table string, q Query) ([]Row, error)

	// GetByKey is the fast path equivalent to an equality query on the
	// record ID with limit 1.
	GetByKey(ctx context.Context, base, table, key string) (Row, error)
}
