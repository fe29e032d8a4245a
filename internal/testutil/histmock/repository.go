package histmock

import (
	"context"

	domain "edulend-backend/internal/domain/history"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	RecordFn                func(ctx context.Context, e *domain.Entry) error
	ListByApplicationFn     func(ctx context.Context, applicationID uint64) ([]domain.Entry, error)
	ListByApplicationDescFn func(ctx context.Context, applicationID uint64) ([]domain.Entry, error)
	DeleteByApplicationFn   func(ctx context.Context, applicationID uint64) error
}

func (m *Repo) Record(ctx context.Context, e *domain.Entry) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Entry, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) ListByApplicationDesc(ctx context.Context, applicationID uint64) ([]domain.Entry, error) {
	if m.ListByApplicationDescFn != nil {
		return m.ListByApplicationDescFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}
