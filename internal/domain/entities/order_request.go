package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest is a client's ask for printed goods.
//
// Storage model:
//   - order_requests (PK: id, unique: request_code)
//   - order_request_items (FK: request_id), replaced as a whole on every edit.
//
// TotalAmount always equals the sum of the items' TotalPrice after a write that
// touches items.
type OrderRequest struct {
	ID          int64           `json:"id"`
	RequestCode string          `json:"request_code"`
	ClientID    int64           `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderRequestItem `json:"items,omitempty"`
}

// OrderRequestItem is one line of an order request.
//
// ProductID is negative for ad-hoc products that are not in the catalogue.
type OrderRequestItem struct {
	ID          int64           `json:"id"`
	RequestID   int64           `json:"request_id"`
	LineNo      int             `json:"line_no"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SerialStart string          `json:"serial_start,omitempty"`
	SerialEnd   string          `json:"serial_end,omitempty"`
}

// IsAdHoc reports whether the line refers to a product outside the catalogue.
func (i OrderRequestItem) IsAdHoc() bool {
	return i.ProductID < 0
}
