package usecase

import (
	"context"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/ordering"
	"printhub/internal/usecase/interfaces"
)

// IClientOrderUseCase exposes the client order view.
//
// The view merges the client_orders mirror with promoted order requests, so it stays
// complete when a mirror write failed or the mirror table does not exist.
type IClientOrderUseCase interface {
	ListClientOrders(ctx context.Context, status entities.OrderStatus) ([]entities.ClientOrder, error)
	GetClientOrderByID(ctx context.Context, id int64) (entities.ClientOrder, error)
	ChangeClientOrderStatus(ctx context.Context, id int64, status entities.OrderStatus, actor string) (TransitionResult, error)
}

type ClientOrderUseCase struct {
	requests interfaces.IOrderRequestRepository
	orders   interfaces.IClientOrderRepository
	engine   *StatusEngine
}

var _ IClientOrderUseCase = (*ClientOrderUseCase)(nil)

func NewClientOrderUseCase(
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
	engine *StatusEngine,
) *ClientOrderUseCase {
	return &ClientOrderUseCase{requests: requests, orders: orders, engine: engine}
}

// ListClientOrders returns mirror rows first, then promoted requests the mirror does
// not cover. An empty status lists every promoted status.
func (u *ClientOrderUseCase) ListClientOrders(ctx context.Context, status entities.OrderStatus) ([]entities.ClientOrder, error) {
	statuses := entities.PromotedStatuses
	if status != "" {
		parsed, ok := entities.ParseOrderStatus(string(status))
		if !ok {
			return nil, ErrInvalidStatus
		}
		if !parsed.IsPromoted() {
			return []entities.ClientOrder{}, nil
		}
		statuses = []entities.OrderStatus{parsed}
	}

	var mirror []entities.ClientOrder
	if u.orders != nil {
		rows, err := u.orders.List(ctx, statuses)
		if err != nil {
			return nil, backendErr("client_order.list", err)
		}
		mirror = rows
	}

	requests, err := u.requests.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, backendErr("order_request.list", err)
	}

	merged := ordering.MergeClientOrders(mirror, requests)
	if len(merged) == 0 {
		return merged, nil
	}

	ids := make([]int64, 0, len(merged))
	for _, o := range merged {
		if id := o.RequestID(); id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) > 0 {
		counts, err := u.requests.CountItems(ctx, ids)
		if err != nil {
			return nil, backendErr("order_request.count_items", err)
		}
		for i := range merged {
			if id := merged[i].RequestID(); id != 0 {
				merged[i].ItemCount = counts[id]
			}
		}
	}
	return merged, nil
}

// GetClientOrderByID returns the order with its items.
func (u *ClientOrderUseCase) GetClientOrderByID(ctx context.Context, id int64) (entities.ClientOrder, error) {
	order, err := locateClientOrder(ctx, u.requests, u.orders, id)
	if err != nil {
		return entities.ClientOrder{}, err
	}
	if order.Source == entities.ClientOrderSourceRequest || order.RequestID() == 0 {
		return order, nil
	}

	items, err := u.requests.ListItems(ctx, []int64{order.RequestID()})
	if err != nil {
		return entities.ClientOrder{}, backendErr("order_request.list_items", err)
	}
	order.Items = items[order.RequestID()]
	order.ItemCount = len(order.Items)
	return order, nil
}

// ChangeClientOrderStatus routes the change through the source request when there is
// one, so both tables stay in step.
func (u *ClientOrderUseCase) ChangeClientOrderStatus(ctx context.Context, id int64, status entities.OrderStatus, actor string) (TransitionResult, error) {
	order, err := locateClientOrder(ctx, u.requests, u.orders, id)
	if err != nil {
		return TransitionResult{}, err
	}
	if reqID := order.RequestID(); reqID != 0 {
		return u.engine.Transition(ctx, reqID, status, actor)
	}
	return u.engine.TransitionOrder(ctx, order, status, actor)
}

// locateClientOrder resolves a client order id. Mirror ids win; when no mirror row
// has the id, a promoted request with that id stands in for it.
func locateClientOrder(
	ctx context.Context,
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
	id int64,
) (entities.ClientOrder, error) {
	if id <= 0 {
		return entities.ClientOrder{}, ErrInvalidOrderID
	}

	if orders != nil {
		o, err := orders.GetByID(ctx, id)
		if err != nil {
			return entities.ClientOrder{}, backendErr("client_order.get", err)
		}
		if o.ID != 0 {
			if o.Source == "" {
				o.Source = entities.ClientOrderSourceMirror
			}
			return o, nil
		}
	}

	r, err := requests.GetByID(ctx, id)
	if err != nil {
		return entities.ClientOrder{}, backendErr("order_request.get", err)
	}
	if r.ID == 0 || !r.Status.IsPromoted() {
		return entities.ClientOrder{}, ErrClientOrderNotFound
	}
	return ordering.RequestAsClientOrder(r), nil
}
