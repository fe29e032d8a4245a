package mysql

import (
	"context"

	noteDomain "edulend-backend/internal/domain/note"

	"gorm.io/gorm"
)

type NoteRepository struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) *NoteRepository { return &NoteRepository{db: db} }

func (r *NoteRepository) Create(ctx context.Context, n *noteDomain.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteRepository) ListByApplication(ctx context.Context, applicationID uint64, includeInternal bool) ([]noteDomain.Note, error) {
	q := r.db.WithContext(ctx).Where("application_id = ?", applicationID)
	if !includeInternal {
		q = q.Where("is_internal = ?", false)
	}
	var out []noteDomain.Note
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *NoteRepository) DeleteByApplication(ctx context.Context, applicationID uint64) error {
	return r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Delete(&noteDomain.Note{}).Error
}
