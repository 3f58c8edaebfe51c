// Package access validates shuffler access codes: a code grants access while
// its row is active and not past its expiration date.
package access

import (
	"context"
	"time"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// Service checks access codes against the access base.
type Service struct {
	store   store.Client
	base    string
	timeout time.Duration
	now     func() time.Time
}

// NewService builds an access service over base.
func NewService(st store.Client, base string, timeout time.Duration) *Service {
	return &Service{store: st, base: base, timeout: timeout, now: time.Now}
}

// CheckCode returns the owner of a still-valid code, or nil when the code
// is unknown, inactive or expired.
func (s *Service) CheckCode(ctx context.Context, code string) (*types.AccessUser, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	rows, err := s.store.Query(ctx, s.base, "Users", store.Query{
		Conditions: []store.Condition{
			store.Eq("Status", "active"),
			store.Eq("Code", code),
			store.After("expirationDate", today),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &types.AccessUser{
		Name:  rows[0].String("FullName"),
		Email: rows[0].String("Email"),
	}, nil
}
