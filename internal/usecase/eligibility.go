package usecase

import (
	"context"
	"fmt"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/ordering"
	"printhub/internal/usecase/interfaces"
)

var inFlightRequestStatuses = []entities.OrderStatus{
	entities.OrderStatusPending,
	entities.OrderStatusNew,
	entities.OrderStatusApproved,
}

// eligibilityGate loads the rows that decide whether a client may get a new request.
type eligibilityGate struct {
	clients  interfaces.IClientRepository
	requests interfaces.IOrderRequestRepository
	orders   interfaces.IClientOrderRepository
}

func (g eligibilityGate) inFlight(ctx context.Context) ([]entities.OrderRequest, []entities.ClientOrder, error) {
	requests, err := g.requests.ListByStatuses(ctx, inFlightRequestStatuses)
	if err != nil {
		return nil, nil, backendErr("order_request.list", err)
	}
	if g.orders == nil {
		return requests, nil, nil
	}
	orders, err := g.orders.List(ctx, []entities.OrderStatus{entities.OrderStatusApproved})
	if err != nil {
		return nil, nil, backendErr("client_order.list", err)
	}
	return requests, orders, nil
}

// active loads the client and rejects it unless it is active.
func (g eligibilityGate) active(ctx context.Context, clientID int64) (entities.Client, error) {
	if clientID <= 0 {
		return entities.Client{}, ErrInvalidClientID
	}
	client, err := g.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, backendErr("client.get", err)
	}
	if client.ID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	if !client.IsActive() {
		return entities.Client{}, fmt.Errorf("%w: %w", ErrInvalidTransition, ordering.ErrClientInactive)
	}
	return client, nil
}

// check returns the client when it is active and has nothing in flight apart from
// excludeRequestID.
func (g eligibilityGate) check(ctx context.Context, clientID, excludeRequestID int64) (entities.Client, error) {
	client, err := g.active(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}

	requests, orders, err := g.inFlight(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	if err := ordering.CheckClientEligible(client, requests, orders, excludeRequestID); err != nil {
		return entities.Client{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	return client, nil
}

func (g eligibilityGate) eligible(ctx context.Context) ([]entities.Client, error) {
	clients, err := g.clients.List(ctx)
	if err != nil {
		return nil, backendErr("client.list", err)
	}
	requests, orders, err := g.inFlight(ctx)
	if err != nil {
		return nil, err
	}
	return ordering.EligibleClients(clients, requests, orders), nil
}
