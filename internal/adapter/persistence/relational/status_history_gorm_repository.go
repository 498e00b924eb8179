package relational

import (
	"context"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type StatusHistoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryGormRepository)(nil)

func NewStatusHistoryGormRepository(db *gorm.DB) *StatusHistoryGormRepository {
	return &StatusHistoryGormRepository{db: db}
}

func (r *StatusHistoryGormRepository) Append(ctx context.Context, e entities.StatusHistoryEntry) error {
	m := toStatusHistoryModel(e)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *StatusHistoryGormRepository) ListBySubject(ctx context.Context, subject entities.HistorySubject, subjectID int64) ([]entities.StatusHistoryEntry, error) {
	var rows []statusHistoryModel
	err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", string(subject), subjectID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.StatusHistoryEntry, len(rows))
	for i, m := range rows {
		out[i] = fromStatusHistoryModel(m)
	}
	return out, nil
}
