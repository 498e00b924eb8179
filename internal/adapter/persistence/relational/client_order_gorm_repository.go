package relational

import (
	"context"
	"errors"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ClientOrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientOrderRepository = (*ClientOrderGormRepository)(nil)

func NewClientOrderGormRepository(db *gorm.DB) *ClientOrderGormRepository {
	return &ClientOrderGormRepository{db: db}
}

// Create inserts a mirror row. Writes for the same order request are serialized on a
// transaction-scoped advisory lock and an existing row is returned instead of a
// second insert.
func (r *ClientOrderGormRepository) Create(ctx context.Context, o entities.ClientOrder) (entities.ClientOrder, error) {
	m := toClientOrderModel(o)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if o.OrderRequestID != nil {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", *o.OrderRequestID).Error; err != nil {
				return err
			}
			var existing clientOrderModel
			err := tx.Where("order_request_id = ?", *o.OrderRequestID).Order("id").Take(&existing).Error
			if err == nil {
				m = existing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return entities.ClientOrder{}, err
	}
	return fromClientOrderModel(m), nil
}

func (r *ClientOrderGormRepository) GetByID(ctx context.Context, id int64) (entities.ClientOrder, error) {
	return r.take(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ClientOrderGormRepository) GetByRequestID(ctx context.Context, requestID int64) (entities.ClientOrder, error) {
	return r.take(r.db.WithContext(ctx).Where("order_request_id = ?", requestID).Order("id"))
}

func (r *ClientOrderGormRepository) List(ctx context.Context, statuses []entities.OrderStatus) ([]entities.ClientOrder, error) {
	q := r.db.WithContext(ctx).Order("id")
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(statuses))
	}
	var rows []clientOrderModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ClientOrder, len(rows))
	for i, m := range rows {
		out[i] = fromClientOrderModel(m)
	}
	return out, nil
}

func (r *ClientOrderGormRepository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.ClientOrder, error) {
	res := r.db.WithContext(ctx).Model(&clientOrderModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": at,
	})
	if res.Error != nil {
		return entities.ClientOrder{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ClientOrder{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *ClientOrderGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&clientOrderModel{}, id).Error
}

func (r *ClientOrderGormRepository) ListCodes(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&clientOrderModel{}).
		Where("order_code LIKE ?", prefix+"%").
		Pluck("order_code", &codes).Error
	return codes, err
}

func (r *ClientOrderGormRepository) take(q *gorm.DB) (entities.ClientOrder, error) {
	var m clientOrderModel
	err := q.Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ClientOrder{}, nil
	}
	if err != nil {
		return entities.ClientOrder{}, err
	}
	return fromClientOrderModel(m), nil
}
