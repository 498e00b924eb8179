package entities

import "time"

// HistorySubject identifies which table a history entry belongs to.
type HistorySubject string

const (
	HistorySubjectOrderRequest HistorySubject = "order_request"
	HistorySubjectClientOrder  HistorySubject = "client_order"
)

// StatusHistoryEntry is an append-only audit record of a status change.
type StatusHistoryEntry struct {
	ID          string         `json:"id"`
	SubjectType HistorySubject `json:"subject_type"`
	SubjectID   int64          `json:"subject_id"`
	Status      OrderStatus    `json:"status"`
	Actor       string         `json:"actor"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
