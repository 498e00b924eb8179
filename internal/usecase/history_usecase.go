package usecase

import (
	"context"
	"slices"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"
)

type IHistoryUseCase interface {
	GetRequestHistory(ctx context.Context, requestID int64) ([]entities.StatusHistoryEntry, error)
	GetOrderHistory(ctx context.Context, orderID int64) ([]entities.StatusHistoryEntry, error)
}

type HistoryUseCase struct {
	history  interfaces.IStatusHistoryRepository
	requests interfaces.IOrderRequestRepository
	orders   interfaces.IClientOrderRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(
	history interfaces.IStatusHistoryRepository,
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
) *HistoryUseCase {
	return &HistoryUseCase{history: history, requests: requests, orders: orders}
}

// GetRequestHistory returns the status changes of an order request, newest first.
func (u *HistoryUseCase) GetRequestHistory(ctx context.Context, requestID int64) ([]entities.StatusHistoryEntry, error) {
	if requestID <= 0 {
		return nil, ErrInvalidRequestID
	}
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, backendErr("order_request.get", err)
	}
	if r.ID == 0 {
		return nil, ErrOrderRequestNotFound
	}

	entries, err := u.history.ListBySubject(ctx, entities.HistorySubjectOrderRequest, requestID)
	if err != nil {
		return nil, backendErr("status_history.list", err)
	}
	return newestFirst(entries), nil
}

// GetOrderHistory merges the entries of a client order with those of its source
// request, newest first.
func (u *HistoryUseCase) GetOrderHistory(ctx context.Context, orderID int64) ([]entities.StatusHistoryEntry, error) {
	order, err := locateClientOrder(ctx, u.requests, u.orders, orderID)
	if err != nil {
		return nil, err
	}

	var entries []entities.StatusHistoryEntry
	if order.Source != entities.ClientOrderSourceRequest {
		own, err := u.history.ListBySubject(ctx, entities.HistorySubjectClientOrder, order.ID)
		if err != nil {
			return nil, backendErr("status_history.list", err)
		}
		entries = append(entries, own...)
	}
	if reqID := order.RequestID(); reqID != 0 {
		fromRequest, err := u.history.ListBySubject(ctx, entities.HistorySubjectOrderRequest, reqID)
		if err != nil {
			return nil, backendErr("status_history.list", err)
		}
		entries = append(entries, fromRequest...)
	}
	return newestFirst(entries), nil
}

func newestFirst(entries []entities.StatusHistoryEntry) []entities.StatusHistoryEntry {
	if entries == nil {
		return []entities.StatusHistoryEntry{}
	}
	slices.SortStableFunc(entries, func(a, b entities.StatusHistoryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return entries
}
