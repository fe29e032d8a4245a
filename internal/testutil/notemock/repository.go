package notemock

import (
	"context"

	domain "edulend-backend/internal/domain/note"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, n *domain.Note) error
	ListByApplicationFn   func(ctx context.Context, applicationID uint64, includeInternal bool) ([]domain.Note, error)
	DeleteByApplicationFn func(ctx context.Context, applicationID uint64) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Note) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64, includeInternal bool) ([]domain.Note, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID, includeInternal)
	}
	return nil, nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}
