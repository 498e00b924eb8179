package response

import (
	"time"

	"printhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type OrderRequestItemResponse struct {
	ID          int64           `json:"id"`
	LineNo      int             `json:"line_no"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	AdHoc       bool            `json:"ad_hoc"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SerialStart string          `json:"serial_start,omitempty"`
	SerialEnd   string          `json:"serial_end,omitempty"`
}

type OrderRequestResponse struct {
	ID          int64                      `json:"id"`
	RequestCode string                     `json:"request_code"`
	ClientID    int64                      `json:"client_id"`
	ClientName  string                     `json:"client_name"`
	Date        string                     `json:"date"`
	Category    string                     `json:"category"`
	Status      string                     `json:"status"`
	TotalAmount decimal.Decimal            `json:"total_amount"`
	Notes       string                     `json:"notes"`
	Items       []OrderRequestItemResponse `json:"items"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

type NextCodeResponse struct {
	Code string `json:"code"`
}

func FromOrderRequestItems(items []entities.OrderRequestItem) []OrderRequestItemResponse {
	out := make([]OrderRequestItemResponse, len(items))
	for i, it := range items {
		out[i] = OrderRequestItemResponse{
			ID:          it.ID,
			LineNo:      it.LineNo,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			AdHoc:       it.IsAdHoc(),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			SerialStart: it.SerialStart,
			SerialEnd:   it.SerialEnd,
		}
	}
	return out
}

func FromOrderRequest(r entities.OrderRequest) OrderRequestResponse {
	return OrderRequestResponse{
		ID:          r.ID,
		RequestCode: r.RequestCode,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		Date:        formatDate(r.Date),
		Category:    r.Category,
		Status:      string(r.Status),
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		Items:       FromOrderRequestItems(r.Items),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromOrderRequests(rs []entities.OrderRequest) []OrderRequestResponse {
	out := make([]OrderRequestResponse, len(rs))
	for i, r := range rs {
		out[i] = FromOrderRequest(r)
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
