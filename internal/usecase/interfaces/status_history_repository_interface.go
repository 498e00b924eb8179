package interfaces

import (
	"context"

	"printhub/internal/domain/entities"
)

type IStatusHistoryRepository interface {
	Append(ctx context.Context, e entities.StatusHistoryEntry) error
	// ListBySubject returns entries newest first.
	ListBySubject(ctx context.Context, subject entities.HistorySubject, subjectID int64) ([]entities.StatusHistoryEntry, error)
}
