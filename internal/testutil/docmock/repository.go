package docmock

import (
	"context"

	domain "edulend-backend/internal/domain/document"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, d *domain.Document) error
	CreateBatchFn         func(ctx context.Context, docs []*domain.Document) error
	SaveFn                func(ctx context.Context, d *domain.Document) error
	DeleteFn              func(ctx context.Context, d *domain.Document) error
	GetByDocumentIDFn     func(ctx context.Context, docID string) (*domain.Document, error)
	FindByTypeFn          func(ctx context.Context, applicationID uint64, docType string) (*domain.Document, error)
	ListByApplicationFn   func(ctx context.Context, applicationID uint64) ([]domain.Document, error)
	DeleteByApplicationFn func(ctx context.Context, applicationID uint64) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) CreateBatch(ctx context.Context, docs []*domain.Document) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, docs)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, d *domain.Document) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocumentID(ctx context.Context, docID string) (*domain.Document, error) {
	if m.GetByDocumentIDFn != nil {
		return m.GetByDocumentIDFn(ctx, docID)
	}
	return nil, context.Canceled
}

func (m *Repo) FindByType(ctx context.Context, applicationID uint64, docType string) (*domain.Document, error) {
	if m.FindByTypeFn != nil {
		return m.FindByTypeFn(ctx, applicationID, docType)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]domain.Document, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	if m.DeleteByApplicationFn != nil {
		return m.DeleteByApplicationFn(ctx, applicationID)
	}
	return nil
}
