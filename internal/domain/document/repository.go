package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	// CreateBatch inserts placeholder rows seeded from a loan-type checklist.
	CreateBatch(ctx context.Context, docs []*Document) error
	Save(ctx context.Context, d *Document) error
	Delete(ctx context.Context, d *Document) error

	GetByDocumentID(ctx context.Context, docID string) (*Document, error)
	FindByType(ctx context.Context, applicationID uint64, docType string) (*Document, error)
	ListByApplication(ctx context.Context, applicationID uint64) ([]Document, error)

	// DeleteByApplication exists only for the application delete cascade.
	DeleteByApplication(ctx context.Context, applicationID uint64) error
}
