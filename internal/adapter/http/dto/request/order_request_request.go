package request

import (
	"errors"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type OrderRequestItemRequest struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SerialStart string          `json:"serial_start"`
	SerialEnd   string          `json:"serial_end"`
}

// OrderRequestPayload is the body of POST /order-requests and PUT /order-requests/:id.
// Totals are never accepted from the client; they are recomputed from the items.
type OrderRequestPayload struct {
	ClientID int64                     `json:"client_id"`
	Date     string                    `json:"date"`
	Category string                    `json:"category"`
	Notes    string                    `json:"notes"`
	Items    []OrderRequestItemRequest `json:"items"`
	Actor    string                    `json:"actor"`
}

func (p OrderRequestPayload) ResolveDate() (time.Time, error) {
	raw := strings.TrimSpace(p.Date)
	if raw == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(dateLayout, raw); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, day := d.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}

func (p OrderRequestPayload) ToInput() (usecase.OrderRequestInput, error) {
	date, err := p.ResolveDate()
	if err != nil {
		return usecase.OrderRequestInput{}, err
	}

	items := make([]entities.OrderRequestItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = entities.OrderRequestItem{
			ProductID:   it.ProductID,
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			SerialStart: strings.TrimSpace(it.SerialStart),
			SerialEnd:   strings.TrimSpace(it.SerialEnd),
		}
	}

	return usecase.OrderRequestInput{
		ClientID: p.ClientID,
		Date:     date,
		Category: p.Category,
		Notes:    p.Notes,
		Items:    items,
		Actor:    strings.TrimSpace(p.Actor),
	}, nil
}
