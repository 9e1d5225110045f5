package store

import (
	"context"

	"github.com/amishk599/jobinsights/internal/model"
)

// Ensure NopStore implements model.JobStore.
var _ model.JobStore = (*NopStore)(nil)

// NopStore is a no-op store used in dry-run mode. It accepts every import
// and writes nothing.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Replace(ctx context.Context, jobs []model.Job) error { return ctx.Err() }
func (s *NopStore) Count(ctx context.Context) (int, error)             { return 0, ctx.Err() }
func (s *NopStore) Close() error                                       { return nil }
