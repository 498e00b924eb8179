package entities

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

// Client is read-only for the order workflow; only Active clients may receive new
// order requests.
type Client struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

func (c Client) IsActive() bool {
	return c.Status == ClientStatusActive
}
