// Package classwork serves the per-course classwork surfaces: the student
// classwork view (record-ID lookup with category-gated text normalization)
// and the current released assignments listing.
package classwork

import (
	"context"
	"time"

	"github.com/mmogib/classwork-v2/internal/gradebook"
	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// Service answers classwork queries against a single store client.
type Service struct {
	store   store.Client
	timeout time.Duration
}

// NewService builds a classwork service. timeout bounds each store call;
// zero means the caller's context governs.
func NewService(st store.Client, timeout time.Duration) *Service {
	return &Service{store: st, timeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

// StudentClasswork fetches the student's grade row by record ID and projects
// it through the displayable field schema. Unlike the disclosure report this
// surface treats values as text: a missing attribute becomes the empty
// string and only category "grade" values are coerced to numbers.
func (s *Service) StudentClasswork(ctx context.Context, base, id string) ([]types.ClassworkItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fields, err := gradebook.LoadDisplayableFields(ctx, s.store, base)
	if err != nil {
		return nil, err
	}

	record, err := s.store.GetByKey(ctx, base, "Grades", id)
	if err != nil {
		return nil, err
	}

	items := make([]types.ClassworkItem, 0, len(fields))
	for _, field := range fields {
		raw := record.String(field.Key)
		items = append(items, types.ClassworkItem{
			Label:    field.Label,
			Category: field.Category,
			Value:    gradebook.NormalizeGradeText(raw, field.Category),
			Order:    field.Order,
		})
	}

	return items, nil
}
