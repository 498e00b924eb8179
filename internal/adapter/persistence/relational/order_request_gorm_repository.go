package relational

import (
	"context"
	"errors"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// OrderRequestGormRepository persists order requests in Postgres.
type OrderRequestGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRequestRepository = (*OrderRequestGormRepository)(nil)

func NewOrderRequestGormRepository(db *gorm.DB) *OrderRequestGormRepository {
	return &OrderRequestGormRepository{db: db}
}

// withClientName selects request rows together with the client's current name.
func (r *OrderRequestGormRepository) withClientName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&orderRequestModel{}).
		Select("order_requests.*, clients.name AS client_name").
		Joins("LEFT JOIN clients ON clients.id = order_requests.client_id")
}

func (r *OrderRequestGormRepository) Create(ctx context.Context, req entities.OrderRequest) (entities.OrderRequest, error) {
	m := toOrderRequestModel(req)
	m.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		items := toOrderRequestItemModels(m.ID, req.Items)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		req.Items = make([]entities.OrderRequestItem, len(items))
		for i, it := range items {
			req.Items[i] = fromOrderRequestItemModel(it)
		}
		return nil
	})
	if err != nil {
		return entities.OrderRequest{}, err
	}
	req.ID = m.ID
	return req, nil
}

func (r *OrderRequestGormRepository) GetByID(ctx context.Context, id int64) (entities.OrderRequest, error) {
	var m orderRequestModel
	err := r.withClientName(ctx).Where("order_requests.id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.OrderRequest{}, nil
	}
	if err != nil {
		return entities.OrderRequest{}, err
	}

	req := fromOrderRequestModel(m)
	items, err := r.ListItems(ctx, []int64{id})
	if err != nil {
		return entities.OrderRequest{}, err
	}
	req.Items = items[id]
	return req, nil
}

// Update rewrites the header of a still-pending request, then deletes every item and
// inserts the new list in the same transaction. The stored status is left alone.
func (r *OrderRequestGormRepository) Update(ctx context.Context, req entities.OrderRequest) (entities.OrderRequest, error) {
	found := true
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderRequestModel{}).
			Where("id = ? AND status IN ?", req.ID, statusStrings(entities.PendingStatuses)).
			Updates(map[string]any{
				"client_id":    req.ClientID,
				"date":         req.Date,
				"category":     req.Category,
				"total_amount": req.TotalAmount,
				"notes":        req.Notes,
				"updated_at":   req.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&orderRequestModel{}).Where("id = ?", req.ID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return interfaces.ErrRequestNotPending
			}
			found = false
			return nil
		}
		if err := tx.Where("request_id = ?", req.ID).Delete(&orderRequestItemModel{}).Error; err != nil {
			return err
		}
		items := toOrderRequestItemModels(req.ID, req.Items)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		req.Items = make([]entities.OrderRequestItem, len(items))
		for i, it := range items {
			req.Items[i] = fromOrderRequestItemModel(it)
		}
		return nil
	})
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if !found {
		return entities.OrderRequest{}, nil
	}
	return req, nil
}

func (r *OrderRequestGormRepository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.OrderRequest, error) {
	res := r.db.WithContext(ctx).Model(&orderRequestModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": at,
	})
	if res.Error != nil {
		return entities.OrderRequest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.OrderRequest{}, nil
	}

	var m orderRequestModel
	if err := r.withClientName(ctx).Where("order_requests.id = ?", id).Take(&m).Error; err != nil {
		return entities.OrderRequest{}, err
	}
	return fromOrderRequestModel(m), nil
}

func (r *OrderRequestGormRepository) ListByStatuses(ctx context.Context, statuses []entities.OrderStatus) ([]entities.OrderRequest, error) {
	if len(statuses) == 0 {
		return []entities.OrderRequest{}, nil
	}
	var rows []orderRequestModel
	err := r.withClientName(ctx).
		Where("order_requests.status IN ?", statusStrings(statuses)).
		Order("order_requests.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.OrderRequest, len(rows))
	for i, m := range rows {
		out[i] = fromOrderRequestModel(m)
	}
	return out, nil
}

func (r *OrderRequestGormRepository) ListItems(ctx context.Context, requestIDs []int64) (map[int64][]entities.OrderRequestItem, error) {
	out := make(map[int64][]entities.OrderRequestItem, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}
	var rows []orderRequestItemModel
	err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("request_id, line_no").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		out[m.RequestID] = append(out[m.RequestID], fromOrderRequestItemModel(m))
	}
	return out, nil
}

type itemCountRow struct {
	RequestID int64
	Count     int
}

func (r *OrderRequestGormRepository) CountItems(ctx context.Context, requestIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}
	var rows []itemCountRow
	err := r.db.WithContext(ctx).
		Model(&orderRequestItemModel{}).
		Select("request_id, COUNT(*) AS count").
		Where("request_id IN ?", requestIDs).
		Group("request_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RequestID] = row.Count
	}
	return out, nil
}

func (r *OrderRequestGormRepository) ListCodes(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&orderRequestModel{}).
		Where("request_code LIKE ?", prefix+"%").
		Pluck("request_code", &codes).Error
	return codes, err
}
