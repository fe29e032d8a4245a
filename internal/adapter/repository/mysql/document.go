package mysql

import (
	"context"

	docDomain "edulend-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) CreateBatch(ctx context.Context, docs []*docDomain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(docs).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, docID string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", docID).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) FindByType(ctx context.Context, applicationID uint64, docType string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND doc_type = ?", applicationID, docType).
		First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]docDomain.Document, error) {
	var out []docDomain.Document
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("uploaded_at DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *DocumentRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&docDomain.Document{}).Error
}
