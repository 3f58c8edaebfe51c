package gradebook

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// Service produces disclosure reports. It holds no per-request state and no
// cache: schema and record are re-resolved from the store on every call.
type Service struct {
	store   store.Client
	timeout time.Duration
}

// NewService builds a grade disclosure service. timeout bounds the two
// store queries of one report; zero means the caller's context governs.
func NewService(st store.Client, timeout time.Duration) *Service {
	return &Service{store: st, timeout: timeout}
}

// Report resolves the student row and the displayable field schema
// concurrently (they have no data dependency), joins them and assembles the
// disclosure report. The first failure cancels the other query and is
// surfaced as-is; there are no retries.
func (s *Service) Report(ctx context.Context, base, hid string) (types.DisclosureReport, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		record store.Row
		fields []types.FieldDefinition
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = ResolveStudent(gctx, s.store, base, hid)
		return err
	})
	g.Go(func() error {
		var err error
		fields, err = LoadDisplayableFields(gctx, s.store, base)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.DisclosureReport{}, err
	}

	return Assemble(fields, record), nil
}
