package usecase

import (
	"context"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"
)

type IClientUseCase interface {
	ListEligibleClients(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	gate eligibilityGate
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(
	clients interfaces.IClientRepository,
	requests interfaces.IOrderRequestRepository,
	orders interfaces.IClientOrderRepository,
) *ClientUseCase {
	return &ClientUseCase{gate: eligibilityGate{clients: clients, requests: requests, orders: orders}}
}

// ListEligibleClients returns active clients with no pending or approved work.
func (u *ClientUseCase) ListEligibleClients(ctx context.Context) ([]entities.Client, error) {
	return u.gate.eligible(ctx)
}
