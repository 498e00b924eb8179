package interfaces

import (
	"context"
	"time"

	"printhub/internal/domain/entities"
)

// IClientOrderRepository abstracts the client_orders mirror table.
//
// The mirror is optional: when the deployment has no client_orders table the
// usecases receive a nil repository and compute the view from order requests.
type IClientOrderRepository interface {
	// Create returns the stored row unchanged when o.OrderRequestID already has one.
	Create(ctx context.Context, o entities.ClientOrder) (entities.ClientOrder, error)
	// GetByRequestID must see a row created or deleted by an earlier call.
	GetByID(ctx context.Context, id int64) (entities.ClientOrder, error)
	GetByRequestID(ctx context.Context, requestID int64) (entities.ClientOrder, error)
	// List returns every row when statuses is empty.
	List(ctx context.Context, statuses []entities.OrderStatus) ([]entities.ClientOrder, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.ClientOrder, error)
	Delete(ctx context.Context, id int64) error
	ListCodes(ctx context.Context, prefix string) ([]string, error)
}
