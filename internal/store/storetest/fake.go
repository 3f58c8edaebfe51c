// Package storetest provides an in-memory store.Client for tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mmogib/classwork-v2/internal/store"
)

// Fake is an in-memory store.Client. Tables are keyed "base/table"; rows
// are matched with the same AND-combined semantics as the real client.
// Services issue queries from concurrent goroutines, so all access goes
// through an internal mutex; QueryCalls is safe to read once the calls
// under test have returned.
type Fake struct {
	mu     sync.Mutex
	Tables map[string][]store.Row

	// Err, when set, is returned from every call.
	Err error

	// QueryCalls counts Query invocations, for cache assertions.
	QueryCalls int
}

// NewFake creates an empty fake store.
func NewFake() *Fake {
	return &Fake{Tables: make(map[string][]store.Row)}
}

// Add appends rows to base/table.
func (f *Fake) Add(base, table string, rows ...store.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := base + "/" + table
	f.Tables[key] = append(f.Tables[key], rows...)
}

// Query implements store.Client.
func (f *Fake) Query(_ context.Context, base, table string, q store.Query) ([]store.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.QueryCalls++
	if f.Err != nil {
		return nil, f.Err
	}

	var matched []store.Row
	for _, row := range f.Tables[base+"/"+table] {
		if rowMatches(row, q.Conditions) {
			matched = append(matched, row)
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			less := lessValues(matched[i][q.OrderBy], matched[j][q.OrderBy])
			if q.Desc {
				return !less
			}
			return less
		})
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return matched, nil
}

// GetByKey implements store.Client.
func (f *Fake) GetByKey(_ context.Context, base, table, key string) (store.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	for _, row := range f.Tables[base+"/"+table] {
		if row.String(store.IDKey) == key {
			return row, nil
		}
	}

	return nil, store.ErrNotFound
}

func rowMatches(row store.Row, conditions []store.Condition) bool {
	for _, cond := range conditions {
		switch cond.Op {
		case store.OpAfter:
			want, ok := cond.Value.(time.Time)
			if !ok {
				return false
			}
			got, ok := row[cond.Field].(time.Time)
			if !ok || !got.After(want) {
				return false
			}
		default:
			if row[cond.Field] != cond.Value {
				return false
			}
		}
	}
	return true
}

func lessValues(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case int:
		bv, _ := b.(int)
		return av < bv
	case int64:
		bv, _ := b.(int64)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	}
	return false
}
