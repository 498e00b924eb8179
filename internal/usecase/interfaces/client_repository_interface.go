package interfaces

import (
	"context"

	"printhub/internal/domain/entities"
)

// IClientRepository is read-only; clients are managed elsewhere.
type IClientRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
