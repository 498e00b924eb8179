package ordering

import (
	"strings"
	"time"

	"printhub/internal/domain/entities"
)

// RequestAsClientOrder reshapes a request row into the client order shape. The id of
// a synthesized row is the request id.
func RequestAsClientOrder(r entities.OrderRequest) entities.ClientOrder {
	requestID := r.ID
	return entities.ClientOrder{
		ID:             r.ID,
		OrderCode:      r.RequestCode,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		OrderDate:      r.Date,
		Amount:         r.TotalAmount,
		Status:         r.Status,
		Notes:          r.Notes,
		OrderRequestID: &requestID,
		ItemCount:      len(r.Items),
		Source:         entities.ClientOrderSourceRequest,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Items:          r.Items,
	}
}

// NewMirrorRow builds the client_orders row inserted when a request is promoted.
func NewMirrorRow(r entities.OrderRequest, orderCode string, status entities.OrderStatus, now time.Time) entities.ClientOrder {
	requestID := r.ID
	return entities.ClientOrder{
		OrderCode:      orderCode,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		OrderDate:      r.Date,
		Amount:         r.TotalAmount,
		Status:         status,
		Notes:          r.Notes,
		OrderRequestID: &requestID,
		ItemCount:      len(r.Items),
		Source:         entities.ClientOrderSourceMirror,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MergeClientOrders returns mirror rows first, then request-derived rows that the
// mirror does not already cover. A row is covered when its order code or its request
// id was already emitted. No two entries share an order code.
func MergeClientOrders(mirror []entities.ClientOrder, requests []entities.OrderRequest) []entities.ClientOrder {
	out := make([]entities.ClientOrder, 0, len(mirror)+len(requests))
	seenCodes := make(map[string]struct{}, len(mirror)+len(requests))
	seenRequests := make(map[int64]struct{}, len(mirror))

	emit := func(o entities.ClientOrder) {
		if code := codeKey(o.OrderCode); code != "" {
			seenCodes[code] = struct{}{}
		}
		if id := o.RequestID(); id != 0 {
			seenRequests[id] = struct{}{}
		}
		out = append(out, o)
	}

	for _, o := range mirror {
		if o.Source == "" {
			o.Source = entities.ClientOrderSourceMirror
		}
		if _, dup := seenCodes[codeKey(o.OrderCode)]; dup {
			continue
		}
		emit(o)
	}

	for _, r := range requests {
		if _, dup := seenRequests[r.ID]; dup {
			continue
		}
		if _, dup := seenCodes[codeKey(r.RequestCode)]; dup {
			continue
		}
		emit(RequestAsClientOrder(r))
	}
	return out
}

// FilterByStatus keeps orders whose status is equivalent to status. An empty status
// keeps everything.
func FilterByStatus(orders []entities.ClientOrder, status entities.OrderStatus) []entities.ClientOrder {
	if status == "" {
		return orders
	}
	out := make([]entities.ClientOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status.Equivalent(status) {
			out = append(out, o)
		}
	}
	return out
}

func codeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
