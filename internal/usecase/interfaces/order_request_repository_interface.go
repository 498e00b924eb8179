package interfaces

import (
	"context"
	"errors"
	"time"

	"printhub/internal/domain/entities"
)

// ErrRequestNotPending is returned by Update when the stored request has left the
// pending statuses since it was read.
var ErrRequestNotPending = errors.New("order request is not pending")

// IOrderRequestRepository abstracts persistence for order requests and their items.
//
// Lookups return a zero-value entity (ID == 0) when the row does not exist.
// Items are never patched: Create and Update write the whole item list.
type IOrderRequestRepository interface {
	Create(ctx context.Context, r entities.OrderRequest) (entities.OrderRequest, error)
	GetByID(ctx context.Context, id int64) (entities.OrderRequest, error)
	// Update rewrites a request that is still pending; the stored status is kept.
	Update(ctx context.Context, r entities.OrderRequest) (entities.OrderRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.OrderRequest, error)
	// ListByStatuses returns headers only, oldest first.
	ListByStatuses(ctx context.Context, statuses []entities.OrderStatus) ([]entities.OrderRequest, error)
	// ListItems loads the items of many requests in one round trip.
	ListItems(ctx context.Context, requestIDs []int64) (map[int64][]entities.OrderRequestItem, error)
	CountItems(ctx context.Context, requestIDs []int64) (map[int64]int, error)
	ListCodes(ctx context.Context, prefix string) ([]string, error)
}
