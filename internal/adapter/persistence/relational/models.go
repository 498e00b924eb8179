package relational

import (
	"time"

	"printhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// The schema is owned outside this service; these models only describe it.
//
//	order_requests(id bigserial pk, request_code text unique, client_id bigint, date date,
//	               category text, status text, total_amount numeric, notes text,
//	               created_at timestamptz, updated_at timestamptz)
//	order_request_items(id bigserial pk, request_id bigint, line_no int, product_id bigint,
//	               product_name text, quantity int, unit_price numeric, total_price numeric,
//	               serial_start text, serial_end text)
//	client_orders(id bigserial pk, order_code text, client_id bigint, client_name text,
//	               order_date date, amount numeric, status text, notes text,
//	               order_request_id bigint null, item_count int, created_at, updated_at)
//	clients(id bigserial pk, name text, email text, phone text, status text, created_at)
//	status_history(id uuid pk, subject_type text, subject_id bigint, status text,
//	               actor text, notes text, created_at timestamptz)
//	code_sequences(name text pk, value bigint)

type orderRequestModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	RequestCode string          `gorm:"column:request_code"`
	ClientID    int64           `gorm:"column:client_id"`
	ClientName  string          `gorm:"column:client_name;->"`
	Date        time.Time       `gorm:"column:date"`
	Category    string          `gorm:"column:category"`
	Status      string          `gorm:"column:status"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric"`
	Notes       string          `gorm:"column:notes"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (orderRequestModel) TableName() string { return "order_requests" }

type orderRequestItemModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	RequestID   int64           `gorm:"column:request_id"`
	LineNo      int             `gorm:"column:line_no"`
	ProductID   int64           `gorm:"column:product_id"`
	ProductName string          `gorm:"column:product_name"`
	Quantity    int             `gorm:"column:quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric"`
	SerialStart string          `gorm:"column:serial_start"`
	SerialEnd   string          `gorm:"column:serial_end"`
}

func (orderRequestItemModel) TableName() string { return "order_request_items" }

type clientOrderModel struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	OrderCode      string          `gorm:"column:order_code"`
	ClientID       int64           `gorm:"column:client_id"`
	ClientName     string          `gorm:"column:client_name"`
	OrderDate      time.Time       `gorm:"column:order_date"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric"`
	Status         string          `gorm:"column:status"`
	Notes          string          `gorm:"column:notes"`
	OrderRequestID *int64          `gorm:"column:order_request_id"`
	ItemCount      int             `gorm:"column:item_count"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

// ClientOrdersTable is the optional mirror table detected at startup.
const ClientOrdersTable = "client_orders"

func (clientOrderModel) TableName() string { return ClientOrdersTable }

type clientModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (clientModel) TableName() string { return "clients" }

type statusHistoryModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	SubjectType string    `gorm:"column:subject_type"`
	SubjectID   int64     `gorm:"column:subject_id"`
	Status      string    `gorm:"column:status"`
	Actor       string    `gorm:"column:actor"`
	Notes       string    `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (statusHistoryModel) TableName() string { return "status_history" }

type codeSequenceModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value"`
}

func (codeSequenceModel) TableName() string { return "code_sequences" }

func toOrderRequestModel(r entities.OrderRequest) orderRequestModel {
	return orderRequestModel{
		ID:          r.ID,
		RequestCode: r.RequestCode,
		ClientID:    r.ClientID,
		Date:        r.Date,
		Category:    r.Category,
		Status:      string(r.Status),
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func fromOrderRequestModel(m orderRequestModel) entities.OrderRequest {
	return entities.OrderRequest{
		ID:          m.ID,
		RequestCode: m.RequestCode,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Date:        m.Date.UTC(),
		Category:    m.Category,
		Status:      entities.OrderStatus(m.Status),
		TotalAmount: m.TotalAmount,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toOrderRequestItemModels(requestID int64, items []entities.OrderRequestItem) []orderRequestItemModel {
	out := make([]orderRequestItemModel, len(items))
	for i, it := range items {
		lineNo := it.LineNo
		if lineNo == 0 {
			lineNo = i + 1
		}
		out[i] = orderRequestItemModel{
			RequestID:   requestID,
			LineNo:      lineNo,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			SerialStart: it.SerialStart,
			SerialEnd:   it.SerialEnd,
		}
	}
	return out
}

func fromOrderRequestItemModel(m orderRequestItemModel) entities.OrderRequestItem {
	return entities.OrderRequestItem{
		ID:          m.ID,
		RequestID:   m.RequestID,
		LineNo:      m.LineNo,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		SerialStart: m.SerialStart,
		SerialEnd:   m.SerialEnd,
	}
}

func toClientOrderModel(o entities.ClientOrder) clientOrderModel {
	return clientOrderModel{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		OrderDate:      o.OrderDate,
		Amount:         o.Amount,
		Status:         string(o.Status),
		Notes:          o.Notes,
		OrderRequestID: o.OrderRequestID,
		ItemCount:      o.ItemCount,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func fromClientOrderModel(m clientOrderModel) entities.ClientOrder {
	return entities.ClientOrder{
		ID:             m.ID,
		OrderCode:      m.OrderCode,
		ClientID:       m.ClientID,
		ClientName:     m.ClientName,
		OrderDate:      m.OrderDate.UTC(),
		Amount:         m.Amount,
		Status:         entities.OrderStatus(m.Status),
		Notes:          m.Notes,
		OrderRequestID: m.OrderRequestID,
		ItemCount:      m.ItemCount,
		Source:         entities.ClientOrderSourceMirror,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

func fromClientModel(m clientModel) entities.Client {
	return entities.Client{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Status:    entities.ClientStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func toStatusHistoryModel(e entities.StatusHistoryEntry) statusHistoryModel {
	return statusHistoryModel{
		ID:          e.ID,
		SubjectType: string(e.SubjectType),
		SubjectID:   e.SubjectID,
		Status:      string(e.Status),
		Actor:       e.Actor,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
	}
}

func fromStatusHistoryModel(m statusHistoryModel) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		ID:          m.ID,
		SubjectType: entities.HistorySubject(m.SubjectType),
		SubjectID:   m.SubjectID,
		Status:      entities.OrderStatus(m.Status),
		Actor:       m.Actor,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func statusStrings(statuses []entities.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
