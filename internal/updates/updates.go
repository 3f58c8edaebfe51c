// Package updates looks up desktop updater release artifacts by target
// platform and installed version.
package updates

import (
	"context"
	"time"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// Service answers release lookups against the releases base.
type Service struct {
	store   store.Client
	base    string
	timeout time.Duration
}

// NewService builds an updates service over base.
func NewService(st store.Client, base string, timeout time.Duration) *Service {
	return &Service{store: st, base: base, timeout: timeout}
}

// Lookup finds the release row keyed by installed version and target
// platform. A nil release with nil error means no update is available.
func (s *Service) Lookup(ctx context.Context, target, version string) (*types.Release, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rows, err := s.store.Query(ctx, s.base, "Releases", store.Query{
		Conditions: []store.Condition{
			store.Eq("key", version),
			store.Eq("target", target),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	release := &types.Release{
		URL:       row.String("url"),
		Version:   row.String("version"),
		Notes:     row.String("notes"),
		Signature: row.String("signature"),
	}

	if date, err := time.Parse(time.RFC3339, row.String("date")); err == nil {
		release.PubDate = date.UTC().Format(time.RFC3339)
	} else if date, err := time.Parse("2006-01-02", row.String("date")); err == nil {
		release.PubDate = date.UTC().Format(time.RFC3339)
	} else {
		release.PubDate = row.String("date")
	}

	return release, nil
}
