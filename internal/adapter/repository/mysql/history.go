package mysql

import (
	"context"

	histDomain "edulend-backend/internal/domain/history"

	"gorm.io/gorm"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Record(ctx context.Context, e *histDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByApplication(ctx context.Context, applicationID uint64) ([]histDomain.Entry, error) {
	var out []histDomain.Entry
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *HistoryRepository) ListByApplicationDesc(ctx context.Context, applicationID uint64) ([]histDomain.Entry, error) {
	var out []histDomain.Entry
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *HistoryRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&histDomain.Entry{}).Error
}
