// Package content projects the shared content-base collections (courses,
// publications, employment, education, projects) into the API's response
// shapes. Collections are small and owner-edited, so they are cached
// in-process for a TTL matching the public cache headers the site used to
// send.
package content

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mmogib/classwork-v2/internal/store"
)

// Service reads content collections through the tabular store.
type Service struct {
	store   store.Client
	base    string
	cache   *cache.Cache
	timeout time.Duration
	now     func() time.Time
}

// NewService builds a content service over base. ttl bounds how long a
// collection snapshot is reused before re-querying the store.
func NewService(st store.Client, base string, ttl, timeout time.Duration) *Service {
	return &Service{
		store:   st,
		base:    base,
		cache:   cache.New(ttl, 2*ttl),
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

// collection returns all rows of one content collection, serving from the
// TTL cache when fresh.
func (s *Service) collection(ctx context.Context, name string) ([]store.Row, error) {
	if cached, found := s.cache.Get(name); found {
		return cached.([]store.Row), nil
	}

	rows, err := s.store.Query(ctx, s.base, name, store.Query{})
	if err != nil {
		return nil, err
	}

	s.cache.Set(name, rows, cache.DefaultExpiration)
	return rows, nil
}

// applyLimit slices a list in place of real pagination; a non-positive
// limit means unbounded.
func applyLimit[T any](items []T, limit int) []T {
	if limit > 0 && limit < len(items) {
		return items[:limit]
	}
	return items
}

// direction flips a comparison for descending order.
func direction(cmp int, desc bool) bool {
	if desc {
		return cmp > 0
	}
	return cmp < 0
}
