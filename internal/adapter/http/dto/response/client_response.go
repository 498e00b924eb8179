package response

import (
	"time"

	"printhub/internal/domain/entities"
)

type ClientResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, len(cs))
	for i, c := range cs {
		out[i] = ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Status: string(c.Status)}
	}
	return out
}

type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	SubjectType string    `json:"subject_type"`
	SubjectID   int64     `json:"subject_id"`
	Status      string    `json:"status"`
	Actor       string    `json:"actor"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromHistory(entries []entities.StatusHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			ID:          e.ID,
			SubjectType: string(e.SubjectType),
			SubjectID:   e.SubjectID,
			Status:      string(e.Status),
			Actor:       e.Actor,
			Notes:       e.Notes,
			CreatedAt:   e.CreatedAt,
		}
	}
	return out
}
