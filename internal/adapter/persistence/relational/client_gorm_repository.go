package relational

import (
	"context"
	"errors"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id int64) (entities.Client, error) {
	var m clientModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]entities.Client, error) {
	var rows []clientModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Client, len(rows))
	for i, m := range rows {
		out[i] = fromClientModel(m)
	}
	return out, nil
}
