package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientOrderSource tells where a client order row came from.
type ClientOrderSource string

const (
	ClientOrderSourceMirror  ClientOrderSource = "mirror"
	ClientOrderSourceRequest ClientOrderSource = "request"
)

// ClientOrder is the promoted form of an order request.
//
// Storage model:
//   - client_orders (PK: id, index: order_request_id)
//
// A request has zero or one mirror row. When the mirror table is not available the
// client order view is synthesized from promoted order requests (Source = request).
type ClientOrder struct {
	ID             int64             `json:"id"`
	OrderCode      string            `json:"order_code"`
	ClientID       int64             `json:"client_id"`
	ClientName     string            `json:"client_name,omitempty"`
	OrderDate      time.Time         `json:"order_date"`
	Amount         decimal.Decimal   `json:"amount"`
	Status         OrderStatus       `json:"status"`
	Notes          string            `json:"notes"`
	OrderRequestID *int64            `json:"order_request_id,omitempty"`
	ItemCount      int               `json:"item_count"`
	Source         ClientOrderSource `json:"source"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Items []OrderRequestItem `json:"items,omitempty"`
}

// RequestID returns the back-referenced order request id, or 0.
func (o ClientOrder) RequestID() int64 {
	if o.OrderRequestID == nil {
		return 0
	}
	return *o.OrderRequestID
}
