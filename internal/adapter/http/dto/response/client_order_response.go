package response

import (
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/shopspring/decimal"
)

type ClientOrderResponse struct {
	ID             int64                      `json:"id"`
	OrderCode      string                     `json:"order_code"`
	ClientID       int64                      `json:"client_id"`
	ClientName     string                     `json:"client_name"`
	OrderDate      string                     `json:"order_date"`
	Amount         decimal.Decimal            `json:"amount"`
	Status         string                     `json:"status"`
	Notes          string                     `json:"notes"`
	OrderRequestID *int64                     `json:"order_request_id"`
	ItemCount      int                        `json:"item_count"`
	Source         string                     `json:"source"`
	Items          []OrderRequestItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

type WarningResponse struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// TransitionResponse is returned by both status endpoints.
type TransitionResponse struct {
	Order    ClientOrderResponse   `json:"order"`
	Request  *OrderRequestResponse `json:"request,omitempty"`
	Changed  bool                  `json:"changed"`
	Warnings []WarningResponse     `json:"warnings"`
}

func FromClientOrder(o entities.ClientOrder) ClientOrderResponse {
	resp := ClientOrderResponse{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		OrderDate:      formatDate(o.OrderDate),
		Amount:         o.Amount,
		Status:         string(o.Status),
		Notes:          o.Notes,
		OrderRequestID: o.OrderRequestID,
		ItemCount:      o.ItemCount,
		Source:         string(o.Source),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if len(o.Items) > 0 {
		resp.Items = FromOrderRequestItems(o.Items)
	}
	return resp
}

func FromClientOrders(orders []entities.ClientOrder) []ClientOrderResponse {
	out := make([]ClientOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromClientOrder(o)
	}
	return out
}

func FromTransition(res usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{
		Order:    FromClientOrder(res.Order),
		Changed:  res.Changed,
		Warnings: make([]WarningResponse, len(res.Warnings)),
	}
	if res.Request.ID != 0 {
		r := FromOrderRequest(res.Request)
		out.Request = &r
	}
	for i, w := range res.Warnings {
		out.Warnings[i] = WarningResponse{Step: w.Step, Message: w.Err.Error()}
	}
	return out
}
